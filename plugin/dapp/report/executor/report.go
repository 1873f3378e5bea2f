package executor

import (
	log "github.com/socialharmony/chain/common/log"
	rty "github.com/socialharmony/chain/plugin/dapp/report/types"
	drivers "github.com/socialharmony/chain/system/dapp"
	"github.com/socialharmony/chain/types"
)

var rlog = log.New("module", "execs.report")

func init() {
	drivers.Register(rty.ReportX, newReport)
}

// Report aggregates observations into weekly buckets behind a small
// write ACL.
type Report struct {
	drivers.DriverBase
}

func newReport() drivers.Driver {
	r := &Report{}
	r.SetChild(r)
	return r
}

// GetDriverName returns the registered name.
func (r *Report) GetDriverName() string {
	return rty.ReportX
}

// Exec dispatches on the action type.
func (r *Report) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action rty.ReportAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, err
	}
	rlog.Debug("exec report", "ty", action.Ty)
	actiondb := NewAction(r, tx)
	switch action.GetTy() {
	case rty.ReportActionUpdate:
		if action.GetUpdate() != nil {
			return actiondb.Update(action.GetUpdate())
		}
	case rty.ReportActionUpdateKey:
		if action.GetUpdateKey() != nil {
			return actiondb.UpdateKey(action.GetUpdateKey())
		}
	case rty.ReportActionGrant:
		if action.GetGrant() != nil {
			return actiondb.Grant(action.GetGrant())
		}
	case rty.ReportActionRevoke:
		if action.GetRevoke() != nil {
			return actiondb.Revoke(action.GetRevoke())
		}
	}
	return nil, types.ErrActionNotSupport
}
