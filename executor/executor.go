// Package executor applies transactions one at a time against the
// statedb. Each transaction executes on a private cache; only the
// receipt of a successful execution is flushed, so a failing action
// leaves no trace.
package executor

import (
	dbm "github.com/socialharmony/chain/common/db"
	log "github.com/socialharmony/chain/common/log"
	"github.com/socialharmony/chain/system/dapp"
	"github.com/socialharmony/chain/types"
)

var elog = log.New("module", "executor")

// Executor is the single writer applying transactions in order.
type Executor struct {
	cfg        *types.Config
	stateDB    dbm.KV
	localDB    dbm.KVDB
	height     int64
	blocktime  int64
	difficulty uint64
}

// New builds an executor over the given state and local stores.
func New(cfg *types.Config, stateDB dbm.KV, localDB dbm.KVDB) *Executor {
	return &Executor{cfg: cfg, stateDB: stateDB, localDB: localDB}
}

// SetEnv sets the block environment used for subsequent transactions.
func (e *Executor) SetEnv(height, blocktime int64, difficulty uint64) {
	e.height = height
	e.blocktime = blocktime
	e.difficulty = difficulty
}

// GetHeight returns the current environment height.
func (e *Executor) GetHeight() int64 {
	return e.height
}

func (e *Executor) loadDriver(execer string, statedb dbm.KV) (dapp.Driver, error) {
	driver, err := dapp.LoadDriver(execer)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(statedb)
	driver.SetLocalDB(e.localDB)
	driver.SetEnv(e.height, e.blocktime, e.difficulty)
	driver.SetConfig(e.cfg)
	return driver, nil
}

// Exec runs one transaction. On success the receipt mutations are
// flushed to the statedb; on error nothing is.
func (e *Executor) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	if tx.GetSignature() == nil || !tx.CheckSign() {
		return nil, types.ErrSign
	}
	cache := newStateCache(e.stateDB)
	driver, err := e.loadDriver(string(tx.Execer), cache)
	if err != nil {
		return nil, err
	}
	if err := driver.CheckTx(tx, index); err != nil {
		return nil, err
	}
	receipt, err := driver.Exec(tx, index)
	if err != nil {
		elog.Debug("exec failed", "execer", string(tx.Execer), "err", err)
		return nil, err
	}
	if receipt == nil {
		return nil, nil
	}
	for _, kv := range receipt.KV {
		if !dapp.AllowKey(driver, kv.Key) {
			elog.Error("write outside driver space", "execer", string(tx.Execer), "key", string(kv.Key))
			return nil, types.ErrKeyNotAllow
		}
	}
	deleter, _ := e.stateDB.(interface{ Delete(key []byte) error })
	for _, kv := range receipt.KV {
		if kv.Value == nil && deleter != nil {
			if err := deleter.Delete(kv.Key); err != nil {
				return nil, err
			}
			continue
		}
		if err := e.stateDB.Set(kv.Key, kv.Value); err != nil {
			return nil, err
		}
	}
	return receipt, nil
}

// ExecLocal builds the local db indexes for an executed transaction and
// applies them.
func (e *Executor) ExecLocal(tx *types.Transaction, receipt *types.Receipt, index int) error {
	driver, err := e.loadDriver(string(tx.Execer), e.stateDB)
	if err != nil {
		return err
	}
	data := &types.ReceiptData{Ty: receipt.GetTy(), Logs: receipt.GetLogs()}
	set, err := driver.ExecLocal(tx, data, index)
	if err != nil {
		return err
	}
	if set == nil {
		return nil
	}
	for _, kv := range set.KV {
		if err := e.localDB.Set(kv.Key, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

// Apply executes a transaction and maintains the local indexes, the
// normal path for one accepted transaction.
func (e *Executor) Apply(tx *types.Transaction, index int) (*types.Receipt, error) {
	receipt, err := e.Exec(tx, index)
	if err != nil {
		return nil, err
	}
	if receipt != nil {
		if err := e.ExecLocal(tx, receipt, index); err != nil {
			return nil, err
		}
	}
	return receipt, nil
}

// Query answers a read only request against a driver.
func (e *Executor) Query(execer, funcName string, params []byte) (types.Message, error) {
	driver, err := e.loadDriver(execer, e.stateDB)
	if err != nil {
		return nil, err
	}
	return driver.Query(funcName, params)
}

// stateCache overlays uncommitted writes on the backing statedb.
type stateCache struct {
	backing dbm.KV
	cache   map[string][]byte
}

func newStateCache(backing dbm.KV) *stateCache {
	return &stateCache{backing: backing, cache: make(map[string][]byte)}
}

func (s *stateCache) Get(key []byte) ([]byte, error) {
	if value, ok := s.cache[string(key)]; ok {
		if value == nil {
			return nil, types.ErrNotFound
		}
		return value, nil
	}
	return s.backing.Get(key)
}

func (s *stateCache) Set(key []byte, value []byte) error {
	s.cache[string(key)] = value
	return nil
}
