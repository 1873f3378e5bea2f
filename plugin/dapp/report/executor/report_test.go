package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialharmony/chain/common/crypto"
	dbm "github.com/socialharmony/chain/common/db"
	"github.com/socialharmony/chain/executor"
	rty "github.com/socialharmony/chain/plugin/dapp/report/types"
	"github.com/socialharmony/chain/types"
	"github.com/socialharmony/chain/util"
)

type testEnv struct {
	t      *testing.T
	exec   *executor.Executor
	height int64
}

func newTestEnv(t *testing.T, owner string) *testEnv {
	statedb, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	localdb, err := dbm.NewGoMemDB("local", "", 0)
	require.NoError(t, err)
	cfg := &types.Config{
		Title: "test",
		Exec: &types.Exec{
			Sub: map[string]map[string]interface{}{
				rty.ReportX: {"owner": owner},
			},
		},
	}
	return &testEnv{t: t, exec: executor.New(cfg, statedb, dbm.NewKVDB(localdb))}
}

func (env *testEnv) applyAt(tx *types.Transaction, blocktime int64) (*types.Receipt, error) {
	env.height++
	env.exec.SetEnv(env.height, blocktime, 1)
	return env.exec.Apply(tx, 0)
}

func reportTx(priv crypto.PrivKey, action *rty.ReportAction) *types.Transaction {
	return util.CreateTx(priv, rty.ReportX, types.Encode(action))
}

func updateTx(priv crypto.PrivKey, key, category string, amount int64) *types.Transaction {
	return reportTx(priv, &rty.ReportAction{
		Ty:     rty.ReportActionUpdate,
		Update: &rty.ReportUpdate{Key: key, Category: category, Amount: amount},
	})
}

func grantTx(priv crypto.PrivKey, addr string) *types.Transaction {
	return reportTx(priv, &rty.ReportAction{Ty: rty.ReportActionGrant, Grant: &rty.ReportGrant{Addr: addr}})
}

func (env *testEnv) bucket(ts int64) *rty.Bucket {
	msg, err := env.exec.Query(rty.ReportX, rty.FuncNameBucket, types.Encode(&rty.ReqReport{Ts: ts}))
	require.NoError(env.t, err)
	return msg.(*rty.Bucket)
}

func (env *testEnv) keyReport(ts int64, key string) *rty.Entry {
	msg, err := env.exec.Query(rty.ReportX, rty.FuncNameKeyReport, types.Encode(&rty.ReqReport{Ts: ts, Key: key}))
	require.NoError(env.t, err)
	return msg.(*rty.Entry)
}

func (env *testEnv) categoryReport(ts int64, key, category string) *rty.Entry {
	msg, err := env.exec.Query(rty.ReportX, rty.FuncNameCategoryReport,
		types.Encode(&rty.ReqReport{Ts: ts, Key: key, Category: category}))
	require.NoError(env.t, err)
	return msg.(*rty.Entry)
}

func TestReportAccessControl(t *testing.T) {
	ownerPriv, owner := util.Genaddress()
	writerPriv, writer := util.Genaddress()
	strangerPriv, _ := util.Genaddress()
	env := newTestEnv(t, owner)
	ts := int64(68342400)

	_, err := env.applyAt(updateTx(strangerPriv, "donations", "", 5), ts)
	assert.Equal(t, rty.ErrNoWriteAccess, err)

	_, err = env.applyAt(grantTx(strangerPriv, writer), ts)
	assert.Equal(t, rty.ErrNotReportOwner, err)

	_, err = env.applyAt(grantTx(ownerPriv, writer), ts)
	require.NoError(t, err)
	_, err = env.applyAt(updateTx(writerPriv, "donations", "", 5), ts)
	require.NoError(t, err)

	// the owner writes without a grant
	_, err = env.applyAt(updateTx(ownerPriv, "donations", "", 2), ts)
	require.NoError(t, err)

	// revocation is immediate
	_, err = env.applyAt(reportTx(ownerPriv, &rty.ReportAction{
		Ty:     rty.ReportActionRevoke,
		Revoke: &rty.ReportGrant{Addr: writer},
	}), ts)
	require.NoError(t, err)
	_, err = env.applyAt(updateTx(writerPriv, "donations", "", 5), ts)
	assert.Equal(t, rty.ErrNoWriteAccess, err)

	msg, err := env.exec.Query(rty.ReportX, rty.FuncNameWriteAccess, types.Encode(&rty.ReqReport{Addr: writer}))
	require.NoError(t, err)
	assert.False(t, msg.(*rty.ReplyWriteAccess).Granted)
}

func TestReportAggregation(t *testing.T) {
	ownerPriv, owner := util.Genaddress()
	env := newTestEnv(t, owner)
	ts := int64(68342400)

	_, err := env.applyAt(updateTx(ownerPriv, "donations", "food", 5), ts)
	require.NoError(t, err)
	_, err = env.applyAt(updateTx(ownerPriv, "donations", "shelter", 7), ts+3600)
	require.NoError(t, err)
	_, err = env.applyAt(updateTx(ownerPriv, "grants", "", 100), ts+7200)
	require.NoError(t, err)

	bucket := env.bucket(ts)
	assert.Equal(t, int64(112), bucket.Sum)
	assert.Equal(t, int64(3), bucket.Count)
	assert.Equal(t, []string{"donations", "grants"}, bucket.Keys)

	donations := env.keyReport(ts, "donations")
	assert.Equal(t, int64(12), donations.Sum)
	assert.Equal(t, int64(2), donations.Count)
	assert.Equal(t, []string{"food", "shelter"}, donations.Categories)
	assert.Empty(t, env.keyReport(ts, "grants").Categories)
	food := env.categoryReport(ts, "donations", "food")
	assert.Equal(t, int64(5), food.Sum)
	assert.Equal(t, int64(1), food.Count)

	// unknown reads are zeros, not errors
	assert.Equal(t, int64(0), env.keyReport(ts, "nothing").Sum)
	assert.Equal(t, int64(0), env.bucket(ts+14*86400).Count)

	// a week later lands in a fresh bucket
	later := ts + 7*86400
	_, err = env.applyAt(updateTx(ownerPriv, "donations", "", 1), later)
	require.NoError(t, err)
	assert.Equal(t, int64(1), env.bucket(later).Sum)
	assert.Equal(t, int64(112), env.bucket(ts).Sum)

	// a bare amount lands in the global bucket only
	_, err = env.applyAt(updateTx(ownerPriv, "", "", 8), ts)
	require.NoError(t, err)
	bucket = env.bucket(ts)
	assert.Equal(t, int64(120), bucket.Sum)
	assert.Equal(t, int64(4), bucket.Count)
	assert.Equal(t, []string{"donations", "grants"}, bucket.Keys)

	// a category without a key has nowhere to hang
	_, err = env.applyAt(updateTx(ownerPriv, "", "misc", 1), ts)
	assert.Equal(t, rty.ErrEmptyReportKey, err)
}

func TestReportKeysWithSeparators(t *testing.T) {
	ownerPriv, owner := util.Genaddress()
	env := newTestEnv(t, owner)
	ts := int64(68342400)

	// key "a-b" category "c" must not alias key "a" category "b-c"
	_, err := env.applyAt(updateTx(ownerPriv, "a-b", "c", 1), ts)
	require.NoError(t, err)
	_, err = env.applyAt(updateTx(ownerPriv, "a", "b-c", 2), ts)
	require.NoError(t, err)

	assert.Equal(t, int64(1), env.keyReport(ts, "a-b").Sum)
	assert.Equal(t, int64(2), env.keyReport(ts, "a").Sum)
	assert.Equal(t, int64(1), env.categoryReport(ts, "a-b", "c").Sum)
	assert.Equal(t, int64(2), env.categoryReport(ts, "a", "b-c").Sum)
	assert.Equal(t, []string{"a-b", "a"}, env.bucket(ts).Keys)
}

func TestUpdateKeyLeavesGlobalSum(t *testing.T) {
	ownerPriv, owner := util.Genaddress()
	env := newTestEnv(t, owner)
	ts := int64(68342400)

	_, err := env.applyAt(updateTx(ownerPriv, "donations", "", 5), ts)
	require.NoError(t, err)

	_, err = env.applyAt(reportTx(ownerPriv, &rty.ReportAction{
		Ty:        rty.ReportActionUpdateKey,
		UpdateKey: &rty.ReportUpdate{Key: "volunteers", Amount: 30},
	}), ts)
	require.NoError(t, err)

	bucket := env.bucket(ts)
	assert.Equal(t, int64(5), bucket.Sum)
	assert.Equal(t, int64(1), bucket.Count)
	// but the key still registers in the period
	assert.Equal(t, []string{"donations", "volunteers"}, bucket.Keys)
	assert.Equal(t, int64(30), env.keyReport(ts, "volunteers").Sum)
}
