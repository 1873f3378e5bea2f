package crypto

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	secpecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/pkg/errors"

	"github.com/socialharmony/chain/common"
)

// ErrPrivKeySize is returned when raw private key material is not 32
// bytes.
var ErrPrivKeySize = errors.New("ErrPrivKeySize")

// SECP256K1 is the only signing scheme the chain currently supports.
const SECP256K1 = int32(1)

// PrivKey signs messages and derives its public key.
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
}

// PubKey verifies signatures and renders the key material.
type PubKey interface {
	Bytes() []byte
	VerifyBytes(msg []byte, sig Signature) bool
	KeyString() string
}

// Signature is an opaque DER encoded signature.
type Signature interface {
	Bytes() []byte
}

type secpPrivKey struct {
	key *btcec.PrivateKey
}

type secpPubKey struct {
	key *btcec.PublicKey
}

type secpSignature struct {
	der []byte
}

// GenKey creates a fresh secp256k1 private key.
func GenKey() (PrivKey, error) {
	key, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return &secpPrivKey{key: key}, nil
}

// PrivKeyFromBytes restores a private key from its raw 32 bytes.
func PrivKeyFromBytes(b []byte) (PrivKey, error) {
	if len(b) != 32 {
		return nil, ErrPrivKeySize
	}
	key, _ := btcec.PrivKeyFromBytes(b)
	return &secpPrivKey{key: key}, nil
}

// PrivKeyFromHex restores a private key from a hex string, with or
// without the 0x prefix.
func PrivKeyFromHex(s string) (PrivKey, error) {
	b, err := common.FromHex(s)
	if err != nil {
		return nil, err
	}
	return PrivKeyFromBytes(b)
}

// PubKeyFromBytes parses a compressed or uncompressed secp256k1 public
// key.
func PubKeyFromBytes(b []byte) (PubKey, error) {
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, err
	}
	return &secpPubKey{key: key}, nil
}

// SignatureFromBytes wraps DER signature bytes.
func SignatureFromBytes(b []byte) Signature {
	return &secpSignature{der: b}
}

func (p *secpPrivKey) Bytes() []byte {
	return p.key.Serialize()
}

func (p *secpPrivKey) Sign(msg []byte) Signature {
	hash := common.Sha256(msg)
	sig := secpecdsa.Sign(p.key, hash)
	return &secpSignature{der: sig.Serialize()}
}

func (p *secpPrivKey) PubKey() PubKey {
	return &secpPubKey{key: p.key.PubKey()}
}

func (p *secpPubKey) Bytes() []byte {
	return p.key.SerializeCompressed()
}

func (p *secpPubKey) VerifyBytes(msg []byte, sig Signature) bool {
	parsed, err := secpecdsa.ParseDERSignature(sig.Bytes())
	if err != nil {
		return false
	}
	return parsed.Verify(common.Sha256(msg), p.key)
}

func (p *secpPubKey) KeyString() string {
	return hex.EncodeToString(p.Bytes())
}

func (s *secpSignature) Bytes() []byte {
	return s.der
}
