package executor

import (
	dbm "github.com/socialharmony/chain/common/db"
	rty "github.com/socialharmony/chain/plugin/dapp/report/types"
	"github.com/socialharmony/chain/types"
)

// Action is the per transaction execution context of the aggregator.
type Action struct {
	db        dbm.KV
	cfg       *types.Config
	fromaddr  string
	blocktime int64
}

// NewAction builds the context from the driver and transaction.
func NewAction(r *Report, tx *types.Transaction) *Action {
	return &Action{
		db:        r.GetStateDB(),
		cfg:       r.GetConfig(),
		fromaddr:  tx.From(),
		blocktime: r.GetBlockTime(),
	}
}

func (a *Action) owner() string {
	return a.cfg.ConfSub(rty.ReportX).GStr("owner", "")
}

func (a *Action) isWriter(addr string) bool {
	if addr != "" && addr == a.owner() {
		return true
	}
	_, err := a.db.Get(rty.AclKey(addr))
	return err == nil
}

// loadBucket reads a period bucket; unknown periods read as zeros.
func loadBucket(db dbm.KV, period int64) (*rty.Bucket, error) {
	value, err := db.Get(rty.BucketKey(period))
	if err != nil {
		return &rty.Bucket{}, nil
	}
	var bucket rty.Bucket
	if err := types.Decode(value, &bucket); err != nil {
		return nil, err
	}
	return &bucket, nil
}

func loadEntry(db dbm.KV, key []byte) (*rty.Entry, error) {
	value, err := db.Get(key)
	if err != nil {
		return &rty.Entry{}, nil
	}
	var entry rty.Entry
	if err := types.Decode(value, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (a *Action) setKV(key []byte, msg types.Message) *types.KeyValue {
	kv := &types.KeyValue{Key: key, Value: types.Encode(msg)}
	if err := a.db.Set(kv.Key, kv.Value); err != nil {
		panic(err)
	}
	return kv
}

func registerKey(bucket *rty.Bucket, key string) {
	for _, k := range bucket.Keys {
		if k == key {
			return
		}
	}
	bucket.Keys = append(bucket.Keys, key)
}

func registerCategory(entry *rty.Entry, category string) {
	for _, c := range entry.Categories {
		if c == category {
			return
		}
	}
	entry.Categories = append(entry.Categories, category)
}

func (a *Action) reportLog(ty int32, period int64, update *rty.ReportUpdate) *types.ReceiptLog {
	r := &rty.ReceiptReport{
		Period:   period,
		Key:      update.GetKey(),
		Category: update.GetCategory(),
		Amount:   update.GetAmount(),
		Addr:     a.fromaddr,
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

// Update adds one observation to the current weekly period: the global
// bucket, the key entry when a key is named, and the category entry
// when one is tagged. A bare amount updates the global bucket only.
func (a *Action) Update(update *rty.ReportUpdate) (*types.Receipt, error) {
	if !a.isWriter(a.fromaddr) {
		return nil, rty.ErrNoWriteAccess
	}
	if update.GetKey() == "" && update.GetCategory() != "" {
		return nil, rty.ErrEmptyReportKey
	}
	period := PeriodStart(a.blocktime)
	bucket, err := loadBucket(a.db, period)
	if err != nil {
		return nil, err
	}
	bucket.Sum += update.GetAmount()
	bucket.Count++
	if update.GetKey() == "" {
		return &types.Receipt{
			Ty:   types.ExecOk,
			KV:   []*types.KeyValue{a.setKV(rty.BucketKey(period), bucket)},
			Logs: []*types.ReceiptLog{a.reportLog(rty.TyLogReportUpdate, period, update)},
		}, nil
	}
	registerKey(bucket, update.GetKey())
	entry, err := loadEntry(a.db, rty.EntryKey(period, update.GetKey()))
	if err != nil {
		return nil, err
	}
	entry.Sum += update.GetAmount()
	entry.Count++
	var catKV *types.KeyValue
	if update.GetCategory() != "" {
		registerCategory(entry, update.GetCategory())
		catKey := rty.CategoryKey(period, update.GetKey(), update.GetCategory())
		cat, err := loadEntry(a.db, catKey)
		if err != nil {
			return nil, err
		}
		cat.Sum += update.GetAmount()
		cat.Count++
		catKV = a.setKV(catKey, cat)
	}
	receipt := &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{
			a.setKV(rty.BucketKey(period), bucket),
			a.setKV(rty.EntryKey(period, update.GetKey()), entry),
		},
		Logs: []*types.ReceiptLog{a.reportLog(rty.TyLogReportUpdate, period, update)},
	}
	if catKV != nil {
		receipt.KV = append(receipt.KV, catKV)
	}
	return receipt, nil
}

// UpdateKey adds one observation to a key entry only. The key is
// registered in the period bucket but the global sum stays untouched.
func (a *Action) UpdateKey(update *rty.ReportUpdate) (*types.Receipt, error) {
	if !a.isWriter(a.fromaddr) {
		return nil, rty.ErrNoWriteAccess
	}
	if update.GetKey() == "" {
		return nil, rty.ErrEmptyReportKey
	}
	period := PeriodStart(a.blocktime)
	bucket, err := loadBucket(a.db, period)
	if err != nil {
		return nil, err
	}
	registerKey(bucket, update.GetKey())
	entry, err := loadEntry(a.db, rty.EntryKey(period, update.GetKey()))
	if err != nil {
		return nil, err
	}
	entry.Sum += update.GetAmount()
	entry.Count++
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{
			a.setKV(rty.BucketKey(period), bucket),
			a.setKV(rty.EntryKey(period, update.GetKey()), entry),
		},
		Logs: []*types.ReceiptLog{a.reportLog(rty.TyLogReportKeyUpdate, period, update)},
	}, nil
}

// Grant gives an address write access, owner only, effective at once.
func (a *Action) Grant(grant *rty.ReportGrant) (*types.Receipt, error) {
	if a.fromaddr != a.owner() || a.owner() == "" {
		return nil, rty.ErrNotReportOwner
	}
	kv := &types.KeyValue{Key: rty.AclKey(grant.GetAddr()), Value: []byte("1")}
	if err := a.db.Set(kv.Key, kv.Value); err != nil {
		return nil, err
	}
	log := &types.ReceiptLog{
		Ty:  rty.TyLogReportGrant,
		Log: types.Encode(&rty.ReceiptReport{Addr: grant.GetAddr()}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{log}}, nil
}

// Revoke removes write access, owner only, effective at once.
func (a *Action) Revoke(revoke *rty.ReportGrant) (*types.Receipt, error) {
	if a.fromaddr != a.owner() || a.owner() == "" {
		return nil, rty.ErrNotReportOwner
	}
	kv := &types.KeyValue{Key: rty.AclKey(revoke.GetAddr())}
	if err := a.db.Set(kv.Key, nil); err != nil {
		return nil, err
	}
	log := &types.ReceiptLog{
		Ty:  rty.TyLogReportRevoke,
		Log: types.Encode(&rty.ReceiptReport{Addr: revoke.GetAddr()}),
	}
	return &types.Receipt{Ty: types.ExecOk, KV: []*types.KeyValue{kv}, Logs: []*types.ReceiptLog{log}}, nil
}
