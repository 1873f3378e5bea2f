package db

import (
	"fmt"

	"github.com/socialharmony/chain/types"
)

// List directions.
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

// ErrNotFoundInDb is returned for missing keys.
var ErrNotFoundInDb = types.ErrNotFound

// KV is the minimal statedb surface handed to executors.
type KV interface {
	Get(key []byte) (value []byte, err error)
	Set(key []byte, value []byte) (err error)
}

// KVDB is the local db surface: KV plus prefix listing for the query
// indexes.
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) (values [][]byte, err error)
}

// DB is a full storage backend.
type DB interface {
	KV
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Iterator(prefix []byte, reverse bool) Iterator
	List(prefix, key []byte, count, direction int32) (values [][]byte, err error)
}

// Batch groups writes for atomic commit.
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

// Iterator walks keys under a prefix.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Close()
}

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB opens a backend by name, panicking on misconfiguration. Opening
// the database is the first thing a node does, there is nothing to fall
// back to.
func NewDB(name string, backend string, dir string, cache int) DB {
	creator, ok := backends[backend]
	if !ok {
		panic(fmt.Sprintf("unknown db backend %q", backend))
	}
	db, err := creator(name, dir, cache)
	if err != nil {
		panic(fmt.Sprintf("initializing db: %v", err))
	}
	return db
}
