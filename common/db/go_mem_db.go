package db

import (
	"sort"
	"strings"
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

func init() {
	creator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator("memdb", creator, false)
}

// GoMemDB is an in-memory backend used by tests and the dev chain.
type GoMemDB struct {
	mtx sync.RWMutex
	db  map[string][]byte
}

// NewGoMemDB creates an empty in-memory db. The arguments exist only to
// satisfy the backend creator signature.
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{db: make(map[string][]byte)}, nil
}

func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	value, ok := db.db[string(key)]
	if !ok {
		return nil, ErrNotFoundInDb
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.mtx.Lock()
	defer db.mtx.Unlock()
	db.db[string(key)] = cloneBytes(value)
	return nil
}

func (db *GoMemDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

func (db *GoMemDB) Delete(key []byte) error {
	db.mtx.Lock()
	defer db.mtx.Unlock()
	delete(db.db, string(key))
	return nil
}

func (db *GoMemDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

func (db *GoMemDB) Close() {
	mlog.Debug("memdb closed")
}

func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

func (db *GoMemDB) Iterator(prefix []byte, reverse bool) Iterator {
	return &memIt{keys: db.sortedKeys(prefix, reverse), db: db, pos: -1}
}

func (db *GoMemDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	reverse := direction != ListASC
	keys := db.sortedKeys(prefix, reverse)
	var values [][]byte
	started := len(key) == 0
	for _, k := range keys {
		if !started {
			if k == string(key) {
				started = true
			}
			continue
		}
		v, err := db.Get([]byte(k))
		if err != nil {
			continue
		}
		values = append(values, v)
		if count > 0 && int32(len(values)) >= count {
			break
		}
	}
	return values, nil
}

func (db *GoMemDB) sortedKeys(prefix []byte, reverse bool) []string {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	keys := make([]string, 0, len(db.db))
	for k := range db.db {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if reverse {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	return keys
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

type memIt struct {
	keys []string
	db   *GoMemDB
	pos  int
}

func (it *memIt) Next() bool {
	it.pos++
	return it.pos < len(it.keys)
}

func (it *memIt) Key() []byte { return []byte(it.keys[it.pos]) }

func (it *memIt) Value() []byte {
	v, _ := it.db.Get([]byte(it.keys[it.pos]))
	return v
}

func (it *memIt) Close() {}

type memBatch struct {
	db  *GoMemDB
	ops []func()
}

func (b *memBatch) Set(key, value []byte) {
	k, v := cloneBytes(key), cloneBytes(value)
	b.ops = append(b.ops, func() { b.db.Set(k, v) })
}

func (b *memBatch) Delete(key []byte) {
	k := cloneBytes(key)
	b.ops = append(b.ops, func() { b.db.Delete(k) })
}

func (b *memBatch) Write() error {
	for _, op := range b.ops {
		op()
	}
	b.ops = nil
	return nil
}
