// Package dapp defines the executor driver framework: every contract is
// a Driver registered by name, executed serially one transaction at a
// time against the statedb.
package dapp

import (
	"bytes"

	"github.com/socialharmony/chain/account"
	"github.com/socialharmony/chain/common/address"
	dbm "github.com/socialharmony/chain/common/db"
	log "github.com/socialharmony/chain/common/log"
	"github.com/socialharmony/chain/types"
)

var blog = log.New("module", "execs.base")

// Driver is one contract executor.
type Driver interface {
	SetStateDB(dbm.KV)
	SetLocalDB(dbm.KVDB)
	SetEnv(height, blocktime int64, difficulty uint64)
	SetConfig(cfg *types.Config)
	GetCoinsAccount() *account.DB
	// GetDriverName is the fixed name the driver registered under.
	GetDriverName() string
	GetName() string
	SetName(string)
	SetChild(Driver)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error)
	Query(funcName string, params []byte) (types.Message, error)
	// IsFriend reports whether the driver may write the given foreign
	// statedb key. Own keys and exec sub account keys are always
	// allowed.
	IsFriend(key []byte) bool
}

// DriverBase carries the common driver state. Concrete drivers embed it
// and override the pieces they need.
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDB
	coinsaccount *account.DB
	cfg          *types.Config
	height       int64
	blocktime    int64
	difficulty   uint64
	name         string
	child        Driver
}

// SetEnv records the block environment for the next execution.
func (d *DriverBase) SetEnv(height, blocktime int64, difficulty uint64) {
	d.height = height
	d.blocktime = blocktime
	d.difficulty = difficulty
}

// SetConfig binds the chain config.
func (d *DriverBase) SetConfig(cfg *types.Config) {
	d.cfg = cfg
}

// GetConfig returns the chain config, possibly nil.
func (d *DriverBase) GetConfig() *types.Config {
	return d.cfg
}

// SetChild wires the concrete driver for virtual dispatch.
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
}

// Exec is overridden by every concrete driver.
func (d *DriverBase) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	return nil, types.ErrActionNotSupport
}

// ExecLocal builds local indexes; the default produces nothing.
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// ExecDelLocal rolls local indexes back; the default produces nothing.
func (d *DriverBase) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	return &types.LocalDBSet{}, nil
}

// Query answers read only requests; the default supports none.
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	return nil, types.ErrQueryNotSupport
}

// CheckTx enforces that tx.To points at the contract address.
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	execer := string(tx.Execer)
	if ExecAddress(execer) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

// IsFriend rejects all foreign keys by default.
func (d *DriverBase) IsFriend(key []byte) bool {
	return false
}

// AllowKey reports whether the driver may write key: its own prefix,
// any coins exec sub account, or a prefix a friend driver granted.
func AllowKey(driver Driver, key []byte) bool {
	own := []byte("mavl-" + driver.GetDriverName() + "-")
	if bytes.HasPrefix(key, own) {
		return true
	}
	execPrefix := []byte(account.SymbolExecPrefix("coins", types.CoinSymbol))
	if bytes.HasPrefix(key, execPrefix) {
		return true
	}
	return driver.IsFriend(key)
}

// SetStateDB binds the statedb and the coins account to it.
func (d *DriverBase) SetStateDB(db dbm.KV) {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
	}
	d.statedb = db
	d.coinsaccount.SetDB(db)
}

// GetStateDB returns the bound statedb.
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB binds the local index db.
func (d *DriverBase) SetLocalDB(db dbm.KVDB) {
	d.localdb = db
}

// GetLocalDB returns the local index db.
func (d *DriverBase) GetLocalDB() dbm.KVDB {
	return d.localdb
}

// GetHeight returns the executing block height.
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime returns the executing block time.
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// GetDifficulty returns the executing block difficulty.
func (d *DriverBase) GetDifficulty() uint64 {
	return d.difficulty
}

// GetName returns the instance name, falling back to the driver name.
func (d *DriverBase) GetName() string {
	if d.name == "" {
		return d.child.GetDriverName()
	}
	return d.name
}

// SetName overrides the instance name.
func (d *DriverBase) SetName(name string) {
	d.name = name
}

// GetCoinsAccount returns the coins asset bound to the statedb.
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
		d.coinsaccount.SetDB(d.statedb)
	}
	return d.coinsaccount
}

// ExecAddress resolves a contract name to its address.
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}

// HeightIndexStr builds the zero padded total order key used by local
// indexes.
func HeightIndexStr(height, index int64) string {
	v := height*types.MaxTxsPerBlock + index
	return fmtIndex(v)
}
