package db

// NewKVDB exposes a full backend through the KVDB interface used for
// local index storage.
func NewKVDB(db DB) KVDB {
	return &kvdb{db: db}
}

type kvdb struct {
	db DB
}

func (k *kvdb) Get(key []byte) ([]byte, error) {
	return k.db.Get(key)
}

func (k *kvdb) Set(key []byte, value []byte) error {
	if value == nil {
		return k.db.Delete(key)
	}
	return k.db.Set(key, value)
}

func (k *kvdb) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	return k.db.List(prefix, key, count, direction)
}
