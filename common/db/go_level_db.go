package db

import (
	"path/filepath"

	log "github.com/inconshreveable/log15"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var llog = log.New("module", "db.goleveldb")

func init() {
	creator := func(name string, dir string, cache int) (DB, error) {
		return NewGoLevelDB(name, dir, cache)
	}
	registerDBCreator("leveldb", creator, false)
	registerDBCreator("goleveldb", creator, false)
}

// GoLevelDB wraps a goleveldb store.
type GoLevelDB struct {
	db *leveldb.DB
}

// NewGoLevelDB opens (or creates) name.db under dir with a cache sized
// in megabytes.
func NewGoLevelDB(name string, dir string, cache int) (*GoLevelDB, error) {
	dbPath := filepath.Join(dir, name+".db")
	if cache <= 0 {
		cache = 64
	}
	handles := cache
	if handles > 16 {
		handles = 16
	}
	options := &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB,
	}
	db, err := leveldb.OpenFile(dbPath, options)
	if err != nil {
		if _, corrupted := err.(*errors.ErrCorrupted); corrupted {
			llog.Error("opening corrupted db, recovering", "path", dbPath, "err", err)
			db, err = leveldb.RecoverFile(dbPath, nil)
		}
		if err != nil {
			return nil, err
		}
	}
	return &GoLevelDB{db: db}, nil
}

func (db *GoLevelDB) Get(key []byte) ([]byte, error) {
	value, err := db.db.Get(key, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, ErrNotFoundInDb
		}
		return nil, err
	}
	return value, nil
}

func (db *GoLevelDB) Set(key []byte, value []byte) error {
	return db.db.Put(key, value, nil)
}

func (db *GoLevelDB) SetSync(key []byte, value []byte) error {
	return db.db.Put(key, value, &opt.WriteOptions{Sync: true})
}

func (db *GoLevelDB) Delete(key []byte) error {
	return db.db.Delete(key, nil)
}

func (db *GoLevelDB) DeleteSync(key []byte) error {
	return db.db.Delete(key, &opt.WriteOptions{Sync: true})
}

func (db *GoLevelDB) Close() {
	if err := db.db.Close(); err != nil {
		llog.Error("close db", "err", err)
	}
}

// NewBatch starts a write batch.
func (db *GoLevelDB) NewBatch(sync bool) Batch {
	return &goLevelDBBatch{db: db, batch: new(leveldb.Batch), wop: &opt.WriteOptions{Sync: sync}}
}

// Iterator walks keys under prefix, optionally in reverse.
func (db *GoLevelDB) Iterator(prefix []byte, reverse bool) Iterator {
	it := db.db.NewIterator(util.BytesPrefix(prefix), nil)
	return &goLevelDBIt{iter: it, reverse: reverse, first: true}
}

// List returns values under prefix, starting after key when key is set.
// direction ListASC walks forward, ListDESC backward. count 0 means no
// limit.
func (db *GoLevelDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	it := db.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer it.Release()
	var values [][]byte
	if direction == ListASC {
		ok := it.First()
		if len(key) > 0 {
			ok = it.Seek(key)
			// the marker itself was in the previous page
			if ok && string(it.Key()) == string(key) {
				ok = it.Next()
			}
		}
		for ; ok; ok = it.Next() {
			values = append(values, cloneValue(it))
			if count > 0 && int32(len(values)) >= count {
				break
			}
		}
	} else {
		ok := it.Last()
		if len(key) > 0 {
			if it.Seek(key) {
				ok = it.Prev()
			} else {
				ok = it.Last()
			}
		}
		for ; ok; ok = it.Prev() {
			values = append(values, cloneValue(it))
			if count > 0 && int32(len(values)) >= count {
				break
			}
		}
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	return values, nil
}

func cloneValue(it iterator.Iterator) []byte {
	v := it.Value()
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

type goLevelDBIt struct {
	iter    iterator.Iterator
	reverse bool
	first   bool
}

func (it *goLevelDBIt) Next() bool {
	if it.first {
		it.first = false
		if it.reverse {
			return it.iter.Last()
		}
		return it.iter.First()
	}
	if it.reverse {
		return it.iter.Prev()
	}
	return it.iter.Next()
}

func (it *goLevelDBIt) Key() []byte   { return it.iter.Key() }
func (it *goLevelDBIt) Value() []byte { return it.iter.Value() }
func (it *goLevelDBIt) Close()        { it.iter.Release() }

type goLevelDBBatch struct {
	db    *GoLevelDB
	batch *leveldb.Batch
	wop   *opt.WriteOptions
}

func (b *goLevelDBBatch) Set(key, value []byte) {
	b.batch.Put(key, value)
}

func (b *goLevelDBBatch) Delete(key []byte) {
	b.batch.Delete(key)
}

func (b *goLevelDBBatch) Write() error {
	return b.db.db.Write(b.batch, b.wop)
}
