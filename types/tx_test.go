package types

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialharmony/chain/common/crypto"
)

func TestSignAndVerify(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	tx := &Transaction{
		Execer:  []byte("coins"),
		Payload: []byte("payload"),
		Fee:     Coin / 100,
		Nonce:   rand.Int63(),
		To:      "16htvcBNSEA7fZhAdLJphDwQRQJaHpyHTp",
	}
	unsigned := tx.Hash()
	tx.Sign(SECP256K1, priv)
	assert.True(t, tx.CheckSign())
	// the hash covers the unsigned body only
	assert.Equal(t, unsigned, tx.Hash())
	assert.NotEmpty(t, tx.From())

	tx.Payload = []byte("tampered")
	assert.False(t, tx.CheckSign())
}

func TestCheckAmount(t *testing.T) {
	assert.True(t, CheckAmount(1))
	assert.True(t, CheckAmount(MaxCoin-1))
	assert.False(t, CheckAmount(0))
	assert.False(t, CheckAmount(-5))
	assert.False(t, CheckAmount(MaxCoin+1))
}

func TestEncodeDecode(t *testing.T) {
	acc := &Account{Balance: 7, Addr: "addr"}
	data := Encode(acc)
	var back Account
	require.NoError(t, Decode(data, &back))
	assert.Equal(t, acc.Balance, back.Balance)
	assert.Equal(t, acc.Addr, back.Addr)
}
