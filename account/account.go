// Package account implements the coins asset model shared by all
// executors: top level balances plus per contract sub accounts used as
// escrow.
package account

import (
	"fmt"
	"strings"

	"github.com/golang/protobuf/proto"

	dbm "github.com/socialharmony/chain/common/db"
	log "github.com/socialharmony/chain/common/log"
	"github.com/socialharmony/chain/types"
)

var alog = log.New("module", "account")

// DB operates on one asset (execer, symbol) over a statedb.
type DB struct {
	db                   dbm.KV
	accountKeyPrefix     []byte
	execAccountKeyPrefix []byte
	execer               string
	symbol               string
}

// NewCoinsAccount returns the native coins asset.
func NewCoinsAccount() *DB {
	return newAccountDB(SymbolPrefix("coins", types.CoinSymbol))
}

// NewAccountDB opens an asset identified by execer and symbol. Names
// with '-' would break the key layout and are rejected.
func NewAccountDB(execer string, symbol string, db dbm.KV) (*DB, error) {
	if strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if strings.ContainsRune(symbol, '-') {
		return nil, types.ErrSymbolNameNotAllow
	}
	accDB := newAccountDB(SymbolPrefix(execer, symbol))
	accDB.execer = execer
	accDB.symbol = symbol
	accDB.SetDB(db)
	return accDB, nil
}

func newAccountDB(prefix string) *DB {
	acc := &DB{}
	acc.accountKeyPrefix = []byte(prefix)
	acc.execAccountKeyPrefix = append([]byte(prefix), []byte("exec-")...)
	return acc
}

// SetDB binds the statedb.
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// LoadAccount reads an account, returning a zero account for unknown
// addresses.
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err) // statedb corrupted
	}
	return &acc1
}

// CheckTransfer reports whether from can afford amount.
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	if accFrom.GetBalance()-amount < 0 {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer moves amount between two top level accounts.
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	if accFrom.Addr == accTo.Addr {
		return nil, types.ErrSendSameToRecv
	}
	if accFrom.GetBalance()-amount < 0 {
		return nil, types.ErrNoBalance
	}
	copyfrom := *accFrom
	copyto := *accTo

	accFrom.Balance = accFrom.GetBalance() - amount
	accTo.Balance = accTo.GetBalance() + amount

	receiptFrom := &types.ReceiptAccountTransfer{Prev: &copyfrom, Current: accFrom}
	receiptTo := &types.ReceiptAccountTransfer{Prev: &copyto, Current: accTo}

	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return acc.transferReceipt(accFrom, accTo, receiptFrom, receiptTo), nil
}

// GenesisInit credits a genesis balance out of thin air. Only the
// genesis block may carry such a receipt.
func (acc *DB) GenesisInit(addr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(addr)
	copyacc := *acc1
	acc1.Balance += amount
	receipt := &types.ReceiptAccountTransfer{Prev: &copyacc, Current: acc1}
	acc.SaveAccount(acc1)
	log1 := &types.ReceiptLog{
		Ty:  types.TyLogGenesis,
		Log: types.Encode(receipt),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(acc1),
		Logs: []*types.ReceiptLog{log1},
	}, nil
}

func (acc *DB) depositBalance(execaddr string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	acc1 := acc.LoadAccount(execaddr)
	copyacc := *acc1
	acc1.Balance += amount
	receipt := &types.ReceiptAccountTransfer{Prev: &copyacc, Current: acc1}
	acc.SaveAccount(acc1)
	log1 := &types.ReceiptLog{
		Ty:  types.TyLogDeposit,
		Log: types.Encode(receipt),
	}
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   acc.GetKVSet(acc1),
		Logs: []*types.ReceiptLog{log1},
	}, nil
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo proto.Message) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{Ty: ty, Log: types.Encode(receiptFrom)}
	log2 := &types.ReceiptLog{Ty: ty, Log: types.Encode(receiptTo)}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SaveAccount writes an account to the statedb.
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].GetKey(), set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetKVSet renders an account as statedb mutations.
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// LoadAccounts batch reads top level accounts.
func (acc *DB) LoadAccounts(addrs []string) (accs []*types.Account, err error) {
	for i := 0; i < len(addrs); i++ {
		accs = append(accs, acc.LoadAccount(addrs[i]))
	}
	return accs, nil
}

// AccountKey returns the statedb key of an address.
func (acc *DB) AccountKey(address string) (key []byte) {
	key = append(key, acc.accountKeyPrefix...)
	key = append(key, []byte(address)...)
	return key
}

// SymbolPrefix is the key prefix of an asset.
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}

// SymbolExecPrefix is the key prefix of an asset's exec sub accounts.
func SymbolExecPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-exec-", execer, symbol)
}
