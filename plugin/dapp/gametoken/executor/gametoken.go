package executor

import (
	"bytes"

	log "github.com/socialharmony/chain/common/log"
	gty "github.com/socialharmony/chain/plugin/dapp/gametoken/types"
	sgt "github.com/socialharmony/chain/plugin/dapp/socialgame/types"
	drivers "github.com/socialharmony/chain/system/dapp"
	"github.com/socialharmony/chain/types"
)

var glog = log.New("module", "execs.gametoken")

func init() {
	drivers.Register(gty.GameTokenX, newGameToken)
}

// GameToken is the participation receipt ledger. Receipts are minted by
// the game driver, endorse games, and found new ones through the
// factory path.
type GameToken struct {
	drivers.DriverBase
}

func newGameToken() drivers.Driver {
	g := &GameToken{}
	g.SetChild(g)
	return g
}

// GetDriverName returns the registered name.
func (g *GameToken) GetDriverName() string {
	return gty.GameTokenX
}

// IsFriend lets the ledger write game state: founding and endorsing
// mutate games directly.
func (g *GameToken) IsFriend(key []byte) bool {
	return bytes.HasPrefix(key, []byte("mavl-"+sgt.SocialGameX+"-"))
}

// Exec dispatches on the action type.
func (g *GameToken) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action gty.TokenAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, err
	}
	glog.Debug("exec gametoken", "ty", action.Ty)
	actiondb := NewAction(g, tx, index)
	if action.Ty == gty.TokenActionTransfer && action.GetTransfer() != nil {
		return actiondb.Transfer(action.GetTransfer())
	}
	return nil, types.ErrActionNotSupport
}

// ExecLocal maintains the owner index from the receipt logs.
func (g *GameToken) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		set.KV = append(set.KV, TokenIndexKVs(item)...)
	}
	return set, nil
}

// ExecDelLocal rolls the owner index back.
func (g *GameToken) ExecDelLocal(tx *types.Transaction, receipt *types.ReceiptData, index int) (*types.LocalDBSet, error) {
	set := &types.LocalDBSet{}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		set.KV = append(set.KV, TokenUnindexKVs(item)...)
	}
	return set, nil
}
