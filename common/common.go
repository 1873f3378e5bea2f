package common

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ripemd160"
)

// Sha256 returns the sha256 digest of b.
func Sha256(b []byte) []byte {
	data := sha256.Sum256(b)
	return data[:]
}

// Sha2Sum returns the double sha256 digest, the checksum base of the
// address scheme.
func Sha2Sum(b []byte) [32]byte {
	tmp := sha256.Sum256(b)
	return sha256.Sum256(tmp[:])
}

// Rimp160AfterSha256 hashes b with sha256 then ripemd160, producing the
// 20 byte account hash.
func Rimp160AfterSha256(b []byte) (out [20]byte) {
	tmp := sha256.Sum256(b)
	rim := ripemd160.New()
	rim.Write(tmp[:])
	copy(out[:], rim.Sum(nil))
	return
}

// ToHex encodes b as a 0x prefixed hex string.
func ToHex(b []byte) string {
	s := hex.EncodeToString(b)
	if len(s) == 0 {
		return ""
	}
	return "0x" + s
}

// FromHex decodes a hex string, accepting an optional 0x/0X prefix and
// odd length input.
func FromHex(s string) ([]byte, error) {
	if len(s) > 1 {
		if s[0:2] == "0x" || s[0:2] == "0X" {
			s = s[2:]
		}
		if len(s)%2 == 1 {
			s = "0" + s
		}
		return hex.DecodeString(s)
	}
	return []byte{}, nil
}

// CopyBytes returns an exact copy of the provided bytes.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
