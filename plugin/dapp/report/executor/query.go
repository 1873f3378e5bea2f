package executor

import (
	rty "github.com/socialharmony/chain/plugin/dapp/report/types"
	"github.com/socialharmony/chain/types"
)

// Query answers read only requests. Unknown periods, keys, and
// categories read as zeros.
func (r *Report) Query(funcName string, params []byte) (types.Message, error) {
	var req rty.ReqReport
	if err := types.Decode(params, &req); err != nil {
		return nil, types.ErrInvalidParam
	}
	period := PeriodStart(req.GetTs())
	switch funcName {
	case rty.FuncNameBucket:
		bucket, err := loadBucket(r.GetStateDB(), period)
		if err != nil {
			return nil, err
		}
		return bucket, nil
	case rty.FuncNameKeyReport:
		entry, err := loadEntry(r.GetStateDB(), rty.EntryKey(period, req.GetKey()))
		if err != nil {
			return nil, err
		}
		return entry, nil
	case rty.FuncNameCategoryReport:
		entry, err := loadEntry(r.GetStateDB(), rty.CategoryKey(period, req.GetKey(), req.GetCategory()))
		if err != nil {
			return nil, err
		}
		return entry, nil
	case rty.FuncNameWriteAccess:
		_, err := r.GetStateDB().Get(rty.AclKey(req.GetAddr()))
		granted := err == nil
		if !granted {
			owner := r.GetConfig().ConfSub(rty.ReportX).GStr("owner", "")
			granted = owner != "" && owner == req.GetAddr()
		}
		return &rty.ReplyWriteAccess{Granted: granted}, nil
	}
	return nil, types.ErrQueryNotSupport
}
