package types

import (
	"github.com/socialharmony/chain/common"
	"github.com/socialharmony/chain/common/address"
	"github.com/socialharmony/chain/common/crypto"
)

// SECP256K1 is the only signature type the chain accepts.
const SECP256K1 = crypto.SECP256K1

// Hash returns the tx hash over the unsigned encoding, so the hash is
// stable before and after signing.
func (m *Transaction) Hash() []byte {
	copytx := *m
	copytx.Signature = nil
	data := Encode(&copytx)
	return common.Sha256(data)
}

// Sign signs the unsigned encoding of the transaction.
func (m *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	m.Signature = nil
	data := Encode(m)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	m.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

// CheckSign verifies the signature against the unsigned encoding.
func (m *Transaction) CheckSign() bool {
	copytx := *m
	copytx.Signature = nil
	data := Encode(&copytx)
	if m.GetSignature().GetTy() != crypto.SECP256K1 {
		return false
	}
	pub, err := crypto.PubKeyFromBytes(m.GetSignature().GetPubkey())
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, crypto.SignatureFromBytes(m.GetSignature().GetSignature()))
}

// From derives the sender address from the signature public key.
func (m *Transaction) From() string {
	if m.GetSignature() == nil {
		return ""
	}
	return address.PubKeyToAddress(m.GetSignature().GetPubkey()).String()
}
