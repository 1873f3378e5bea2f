package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialharmony/chain/common/address"
	dbm "github.com/socialharmony/chain/common/db"
	"github.com/socialharmony/chain/types"
	"github.com/socialharmony/chain/util"
)

func newCoinsDB(t *testing.T) *DB {
	statedb, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	acc := NewCoinsAccount()
	acc.SetDB(statedb)
	return acc
}

func TestTransfer(t *testing.T) {
	acc := newCoinsDB(t)
	_, a := util.Genaddress()
	_, b := util.Genaddress()
	_, err := acc.GenesisInit(a, 10*types.Coin)
	require.NoError(t, err)

	receipt, err := acc.Transfer(a, b, 3*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Len(t, receipt.KV, 2)
	assert.Equal(t, 7*types.Coin, acc.LoadAccount(a).Balance)
	assert.Equal(t, 3*types.Coin, acc.LoadAccount(b).Balance)

	_, err = acc.Transfer(a, b, 100*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = acc.Transfer(a, a, types.Coin)
	assert.Equal(t, types.ErrSendSameToRecv, err)
	_, err = acc.Transfer(a, b, -1)
	assert.Equal(t, types.ErrAmount, err)
}

func TestExecAccountFlow(t *testing.T) {
	acc := newCoinsDB(t)
	_, a := util.Genaddress()
	_, b := util.Genaddress()
	execaddr := address.ExecAddress("socialgame")
	_, err := acc.GenesisInit(a, 10*types.Coin)
	require.NoError(t, err)

	_, err = acc.TransferToExec(a, execaddr, 6*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 4*types.Coin, acc.LoadAccount(a).Balance)
	assert.Equal(t, 6*types.Coin, acc.LoadExecAccount(a, execaddr).Balance)
	// the contract address holds the escrowed total
	assert.Equal(t, 6*types.Coin, acc.LoadAccount(execaddr).Balance)

	_, err = acc.ExecTransfer(a, b, execaddr, 2*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 4*types.Coin, acc.LoadExecAccount(a, execaddr).Balance)
	assert.Equal(t, 2*types.Coin, acc.LoadExecAccount(b, execaddr).Balance)

	_, err = acc.ExecTransfer(a, b, execaddr, 100*types.Coin)
	assert.Equal(t, types.ErrNoBalance, err)

	_, err = acc.ExecFrozen(a, execaddr, 3*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, types.Coin, acc.LoadExecAccount(a, execaddr).Balance)
	assert.Equal(t, 3*types.Coin, acc.LoadExecAccount(a, execaddr).Frozen)
	_, err = acc.ExecActive(a, execaddr, 3*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 4*types.Coin, acc.LoadExecAccount(a, execaddr).Balance)

	_, err = acc.TransferWithdraw(a, execaddr, 4*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 8*types.Coin, acc.LoadAccount(a).Balance)
	assert.Equal(t, int64(0), acc.LoadExecAccount(a, execaddr).Balance)
}

func TestSymbolPrefix(t *testing.T) {
	assert.Equal(t, "mavl-coins-shc-", SymbolPrefix("coins", "shc"))
	assert.Equal(t, "mavl-coins-shc-exec-", SymbolExecPrefix("coins", "shc"))
	_, err := NewAccountDB("bad-exec", "shc", nil)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
}
