package executor

import (
	"bytes"
	"fmt"

	log "github.com/socialharmony/chain/common/log"
	token "github.com/socialharmony/chain/plugin/dapp/gametoken/executor"
	gametokentypes "github.com/socialharmony/chain/plugin/dapp/gametoken/types"
	gt "github.com/socialharmony/chain/plugin/dapp/socialgame/types"
	drivers "github.com/socialharmony/chain/system/dapp"
	"github.com/socialharmony/chain/types"
)

var glog = log.New("module", "execs.socialgame")

func init() {
	drivers.Register(gt.SocialGameX, newSocialGame)
}

// SocialGame is the fundraising game driver: fixed price entries into a
// per game escrow pool, resolved by a winner draw when the participant
// target is hit.
type SocialGame struct {
	drivers.DriverBase
}

func newSocialGame() drivers.Driver {
	g := &SocialGame{}
	g.SetChild(g)
	return g
}

// GetDriverName returns the registered name.
func (g *SocialGame) GetDriverName() string {
	return gt.SocialGameX
}

// IsFriend lets the game driver write token state: resolution mints and
// releases participation receipts.
func (g *SocialGame) IsFriend(key []byte) bool {
	return bytes.HasPrefix(key, []byte("mavl-"+gametokentypes.GameTokenX+"-"))
}

// Exec dispatches on the action type.
func (g *SocialGame) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action gt.GameAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, err
	}
	glog.Debug("exec socialgame", "ty", action.Ty)
	actiondb := NewAction(g, tx, index)
	switch action.GetTy() {
	case gt.GameActionCreate:
		if action.GetCreate() != nil {
			return actiondb.Create(action.GetCreate())
		}
	case gt.GameActionParticipate:
		if action.GetParticipate() != nil {
			return actiondb.Participate(action.GetParticipate())
		}
	case gt.GameActionCancel:
		if action.GetCancel() != nil {
			return actiondb.Cancel(action.GetCancel())
		}
	case gt.GameActionRefund:
		if action.GetRefund() != nil {
			return actiondb.Refund(action.GetRefund())
		}
	case gt.GameActionWithdraw:
		if action.GetWithdraw() != nil {
			return actiondb.Withdraw(action.GetWithdraw())
		}
	case gt.GameActionClaimPrize:
		if action.GetClaimPrize() != nil {
			return actiondb.ClaimPrize(action.GetClaimPrize())
		}
	case gt.GameActionClaimEndorsement:
		if action.GetClaimEndorsement() != nil {
			return actiondb.ClaimEndorsement(action.GetClaimEndorsement())
		}
	case gt.GameActionRefundEndorsement:
		if action.GetRefundEndorsement() != nil {
			return actiondb.RefundEndorsement(action.GetRefundEndorsement())
		}
	}
	return nil, types.ErrActionNotSupport
}

func calcGameStatusKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf("game-status:%d:%018d", status, index))
}

func calcGameStatusPrefix(status int32) []byte {
	return []byte(fmt.Sprintf("game-status:%d:", status))
}

func calcGameAddrKey(addr string, index int64) []byte {
	return []byte(fmt.Sprintf("game-addr:%s:%018d", addr, index))
}

func calcGameAddrPrefix(addr string) []byte {
	return []byte(fmt.Sprintf("game-addr:%s:", addr))
}

func gameRecordValue(gameId string, index int64) []byte {
	return types.Encode(&gt.GameRecord{GameId: gameId, Index: index})
}

// ExecLocal maintains the status and address indexes from the receipt
// logs; token logs inside game receipts feed the token owner index.
func (g *SocialGame) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if kvs := token.TokenIndexKVs(item); kvs != nil {
			set.KV = append(set.KV, kvs...)
			continue
		}
		var r gt.ReceiptSocialGame
		switch item.GetTy() {
		case gt.TyLogGameCreate:
			if err := types.Decode(item.Log, &r); err != nil {
				return nil, err
			}
			set.KV = append(set.KV,
				&types.KeyValue{Key: calcGameStatusKey(r.Status, r.StatusIndex), Value: gameRecordValue(r.GameId, r.StatusIndex)},
				&types.KeyValue{Key: calcGameAddrKey(r.Addr, r.Index), Value: gameRecordValue(r.GameId, r.Index)})
		case gt.TyLogGameParticipate, gt.TyLogGameEndorse:
			if err := types.Decode(item.Log, &r); err != nil {
				return nil, err
			}
			set.KV = append(set.KV,
				&types.KeyValue{Key: calcGameAddrKey(r.Addr, r.Index), Value: gameRecordValue(r.GameId, r.Index)})
		case gt.TyLogGameComplete, gt.TyLogGameCancel:
			if err := types.Decode(item.Log, &r); err != nil {
				return nil, err
			}
			set.KV = append(set.KV,
				&types.KeyValue{Key: calcGameStatusKey(r.PrevStatus, r.PrevStatusIndex)},
				&types.KeyValue{Key: calcGameStatusKey(r.Status, r.StatusIndex), Value: gameRecordValue(r.GameId, r.StatusIndex)},
				&types.KeyValue{Key: calcGameAddrKey(r.Addr, r.Index), Value: gameRecordValue(r.GameId, r.Index)})
		}
	}
	return set, nil
}

// ExecDelLocal reverses ExecLocal for block rollback.
func (g *SocialGame) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if kvs := token.TokenUnindexKVs(item); kvs != nil {
			set.KV = append(set.KV, kvs...)
			continue
		}
		var r gt.ReceiptSocialGame
		switch item.GetTy() {
		case gt.TyLogGameCreate:
			if err := types.Decode(item.Log, &r); err != nil {
				return nil, err
			}
			set.KV = append(set.KV,
				&types.KeyValue{Key: calcGameStatusKey(r.Status, r.StatusIndex)},
				&types.KeyValue{Key: calcGameAddrKey(r.Addr, r.Index)})
		case gt.TyLogGameParticipate, gt.TyLogGameEndorse:
			if err := types.Decode(item.Log, &r); err != nil {
				return nil, err
			}
			set.KV = append(set.KV,
				&types.KeyValue{Key: calcGameAddrKey(r.Addr, r.Index)})
		case gt.TyLogGameComplete, gt.TyLogGameCancel:
			if err := types.Decode(item.Log, &r); err != nil {
				return nil, err
			}
			set.KV = append(set.KV,
				&types.KeyValue{Key: calcGameStatusKey(r.Status, r.StatusIndex)},
				&types.KeyValue{Key: calcGameStatusKey(r.PrevStatus, r.PrevStatusIndex), Value: gameRecordValue(r.GameId, r.PrevStatusIndex)},
				&types.KeyValue{Key: calcGameAddrKey(r.Addr, r.Index)})
		}
	}
	return set, nil
}
