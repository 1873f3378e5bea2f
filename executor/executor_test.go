package executor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialharmony/chain/account"
	"github.com/socialharmony/chain/common/address"
	dbm "github.com/socialharmony/chain/common/db"
	"github.com/socialharmony/chain/executor"
	_ "github.com/socialharmony/chain/system/dapp/coins/executor"
	cty "github.com/socialharmony/chain/system/dapp/coins/types"
	"github.com/socialharmony/chain/types"
	"github.com/socialharmony/chain/util"
)

func newTestExecutor(t *testing.T) (*executor.Executor, *account.DB) {
	statedb, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	localdb, err := dbm.NewGoMemDB("local", "", 0)
	require.NoError(t, err)
	e := executor.New(&types.Config{Title: "test"}, statedb, dbm.NewKVDB(localdb))
	e.SetEnv(1, 1000000, 1)
	acc := account.NewCoinsAccount()
	acc.SetDB(statedb)
	return e, acc
}

func TestExecRequiresSignature(t *testing.T) {
	e, _ := newTestExecutor(t)
	tx := &types.Transaction{
		Execer:  []byte(cty.CoinsX),
		Payload: types.Encode(&cty.CoinsAction{Ty: cty.CoinsActionTransfer, Transfer: &cty.CoinsTransfer{Amount: 1}}),
		Nonce:   rand.Int63(),
	}
	_, err := e.Exec(tx, 0)
	assert.Equal(t, types.ErrSign, err)
}

func TestUnknownDriver(t *testing.T) {
	e, _ := newTestExecutor(t)
	priv, _ := util.Genaddress()
	tx := util.CreateTx(priv, "nosuchdriver", []byte("x"))
	_, err := e.Exec(tx, 0)
	assert.Equal(t, types.ErrExecNotFound, err)
}

func TestCoinsTransfer(t *testing.T) {
	e, acc := newTestExecutor(t)
	aPriv, aAddr := util.Genaddress()
	_, bAddr := util.Genaddress()
	_, err := acc.GenesisInit(aAddr, 10*types.Coin)
	require.NoError(t, err)

	receipt, err := e.Apply(util.CreateCoinsTransferTx(aPriv, bAddr, 3*types.Coin), 0)
	require.NoError(t, err)
	require.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, 7*types.Coin, acc.LoadAccount(aAddr).Balance)
	assert.Equal(t, 3*types.Coin, acc.LoadAccount(bAddr).Balance)
}

// a failing action must leave the statedb untouched
func TestFailedExecLeavesNoTrace(t *testing.T) {
	e, acc := newTestExecutor(t)
	aPriv, aAddr := util.Genaddress()
	_, bAddr := util.Genaddress()
	_, err := acc.GenesisInit(aAddr, types.Coin)
	require.NoError(t, err)

	_, err = e.Apply(util.CreateCoinsTransferTx(aPriv, bAddr, 5*types.Coin), 0)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, types.Coin, acc.LoadAccount(aAddr).Balance)
	assert.Equal(t, int64(0), acc.LoadAccount(bAddr).Balance)
}

func TestTransferToExec(t *testing.T) {
	e, acc := newTestExecutor(t)
	aPriv, aAddr := util.Genaddress()
	_, err := acc.GenesisInit(aAddr, 10*types.Coin)
	require.NoError(t, err)

	_, err = e.Apply(util.CreateTransferToExecTx(aPriv, "socialgame", 4*types.Coin), 0)
	require.NoError(t, err)
	execaddr := address.ExecAddress("socialgame")
	assert.Equal(t, 4*types.Coin, acc.LoadExecAccount(aAddr, execaddr).Balance)
	assert.Equal(t, 6*types.Coin, acc.LoadAccount(aAddr).Balance)

	// the wrapped action must aim at the named contract
	tx := util.CreateTransferToExecTx(aPriv, "socialgame", types.Coin)
	tx.To = aAddr
	tx.Sign(types.SECP256K1, aPriv)
	_, err = e.Apply(tx, 0)
	assert.Equal(t, types.ErrToAddrNotSameToExecAddr, err)
}

func TestGenesisOnlyAtHeightZero(t *testing.T) {
	e, _ := newTestExecutor(t)
	priv, addr := util.Genaddress()
	action := &cty.CoinsAction{
		Ty:      cty.CoinsActionGenesis,
		Genesis: &cty.CoinsGenesis{Amount: types.Coin, ReturnAddress: addr},
	}
	tx := util.CreateTx(priv, cty.CoinsX, types.Encode(action))
	_, err := e.Exec(tx, 0)
	assert.Equal(t, types.ErrReRunGenesis, err)

	e.SetEnv(0, 1000000, 1)
	_, err = e.Exec(tx, 0)
	assert.NoError(t, err)
}
