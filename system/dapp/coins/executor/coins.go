// Package executor implements the coins driver: native token transfers
// plus deposits into and withdrawals out of contract sub accounts.
package executor

import (
	log "github.com/socialharmony/chain/common/log"
	drivers "github.com/socialharmony/chain/system/dapp"
	ct "github.com/socialharmony/chain/system/dapp/coins/types"
	"github.com/socialharmony/chain/types"
)

var clog = log.New("module", "execs.coins")

func init() {
	drivers.Register(ct.CoinsX, newCoins)
}

// Coins is the native token driver.
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	return c
}

// GetDriverName returns the fixed driver name.
func (c *Coins) GetDriverName() string {
	return ct.CoinsX
}

// CheckTx allows arbitrary To addresses: plain transfers send straight
// to the receiver, not to the contract address.
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	return nil
}

// Exec dispatches the coins actions.
func (c *Coins) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action ct.CoinsAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	from := tx.From()
	acc := c.GetCoinsAccount()
	switch {
	case action.Ty == ct.CoinsActionTransfer && action.GetTransfer() != nil:
		transfer := action.GetTransfer()
		to := transfer.GetTo()
		if to == "" {
			to = tx.To
		}
		return acc.Transfer(from, to, transfer.GetAmount())
	case action.Ty == ct.CoinsActionGenesis && action.GetGenesis() != nil:
		if c.GetHeight() != 0 {
			return nil, types.ErrReRunGenesis
		}
		genesis := action.GetGenesis()
		to := genesis.GetReturnAddress()
		if to == "" {
			to = tx.To
		}
		return acc.GenesisInit(to, genesis.GetAmount())
	case action.Ty == ct.CoinsActionWithdraw && action.GetWithdraw() != nil:
		withdraw := action.GetWithdraw()
		execaddr := drivers.ExecAddress(withdraw.GetExecName())
		return acc.TransferWithdraw(from, execaddr, withdraw.GetAmount())
	case action.Ty == ct.CoinsActionTransferToExec && action.GetTransferToExec() != nil:
		toExec := action.GetTransferToExec()
		execaddr := drivers.ExecAddress(toExec.GetExecName())
		if tx.To != execaddr {
			clog.Error("transferToExec", "to", tx.To, "execaddr", execaddr)
			return nil, types.ErrToAddrNotSameToExecAddr
		}
		return acc.TransferToExec(from, execaddr, toExec.GetAmount())
	}
	return nil, types.ErrActionNotSupport
}
