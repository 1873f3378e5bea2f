// Package util holds small helpers shared by tests and the dev tools.
package util

import (
	"math/rand"

	"github.com/socialharmony/chain/common/address"
	"github.com/socialharmony/chain/common/crypto"
	cty "github.com/socialharmony/chain/system/dapp/coins/types"
	"github.com/socialharmony/chain/types"
)

// Genaddress makes a fresh key pair and its address.
func Genaddress() (crypto.PrivKey, string) {
	priv, err := crypto.GenKey()
	if err != nil {
		panic(err)
	}
	return priv, address.PubKeyToAddress(priv.PubKey().Bytes()).String()
}

// CreateTx builds a signed transaction aimed at a contract.
func CreateTx(priv crypto.PrivKey, execer string, payload []byte) *types.Transaction {
	tx := &types.Transaction{
		Execer:  []byte(execer),
		Payload: payload,
		Fee:     types.Coin / 100,
		Nonce:   rand.Int63(),
		To:      address.ExecAddress(execer),
	}
	tx.Sign(types.SECP256K1, priv)
	return tx
}

// CreateCoinsTransferTx builds a signed plain coins transfer.
func CreateCoinsTransferTx(priv crypto.PrivKey, to string, amount int64) *types.Transaction {
	action := &cty.CoinsAction{
		Ty:       cty.CoinsActionTransfer,
		Transfer: &cty.CoinsTransfer{Amount: amount, To: to},
	}
	tx := &types.Transaction{
		Execer:  []byte(cty.CoinsX),
		Payload: types.Encode(action),
		Fee:     types.Coin / 100,
		Nonce:   rand.Int63(),
		To:      to,
	}
	tx.Sign(types.SECP256K1, priv)
	return tx
}

// CreateTransferToExecTx builds a signed move of coins into a contract
// sub account.
func CreateTransferToExecTx(priv crypto.PrivKey, execName string, amount int64) *types.Transaction {
	action := &cty.CoinsAction{
		Ty:             cty.CoinsActionTransferToExec,
		TransferToExec: &cty.CoinsTransferExec{Amount: amount, ExecName: execName},
	}
	tx := &types.Transaction{
		Execer:  []byte(cty.CoinsX),
		Payload: types.Encode(action),
		Fee:     types.Coin / 100,
		Nonce:   rand.Int63(),
		To:      address.ExecAddress(execName),
	}
	tx.Sign(types.SECP256K1, priv)
	return tx
}
