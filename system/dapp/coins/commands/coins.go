// Package commands builds raw coins transactions for the dev tools.
package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/socialharmony/chain/common"
	"github.com/socialharmony/chain/common/address"
	sgcommands "github.com/socialharmony/chain/plugin/dapp/socialgame/commands"
	cty "github.com/socialharmony/chain/system/dapp/coins/types"
	"github.com/socialharmony/chain/types"
)

// CoinsCmd is the command tree of the native asset.
func CoinsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coins",
		Short: "Native coin transactions",
	}
	cmd.AddCommand(transferRawCmd(), sendToExecRawCmd(), withdrawRawCmd())
	return cmd
}

func printRawTx(action *cty.CoinsAction, to string) {
	tx := &types.Transaction{
		Execer:  []byte(cty.CoinsX),
		Payload: types.Encode(action),
		Fee:     types.Coin / 100,
		Nonce:   rand.Int63(),
		To:      to,
	}
	fmt.Println(common.ToHex(types.Encode(tx)))
}

func transferRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Build a raw coin transfer",
		Run: func(cmd *cobra.Command, args []string) {
			to, _ := cmd.Flags().GetString("to")
			amountStr, _ := cmd.Flags().GetString("amount")
			amount, err := sgcommands.ParseCoinAmount(amountStr)
			if err != nil {
				fmt.Println(err)
				return
			}
			printRawTx(&cty.CoinsAction{
				Ty:       cty.CoinsActionTransfer,
				Transfer: &cty.CoinsTransfer{Amount: amount, To: to},
			}, to)
		},
	}
	cmd.Flags().StringP("to", "t", "", "destination address")
	cmd.MarkFlagRequired("to")
	cmd.Flags().StringP("amount", "a", "0", "amount in coins")
	return cmd
}

func sendToExecRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-exec",
		Short: "Build a raw move of coins into a contract sub account",
		Run: func(cmd *cobra.Command, args []string) {
			exec, _ := cmd.Flags().GetString("exec")
			amountStr, _ := cmd.Flags().GetString("amount")
			amount, err := sgcommands.ParseCoinAmount(amountStr)
			if err != nil {
				fmt.Println(err)
				return
			}
			printRawTx(&cty.CoinsAction{
				Ty:             cty.CoinsActionTransferToExec,
				TransferToExec: &cty.CoinsTransferExec{Amount: amount, ExecName: exec},
			}, address.ExecAddress(exec))
		},
	}
	cmd.Flags().StringP("exec", "e", "socialgame", "contract name")
	cmd.Flags().StringP("amount", "a", "0", "amount in coins")
	return cmd
}

func withdrawRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Build a raw withdrawal out of a contract sub account",
		Run: func(cmd *cobra.Command, args []string) {
			exec, _ := cmd.Flags().GetString("exec")
			amountStr, _ := cmd.Flags().GetString("amount")
			amount, err := sgcommands.ParseCoinAmount(amountStr)
			if err != nil {
				fmt.Println(err)
				return
			}
			printRawTx(&cty.CoinsAction{
				Ty:       cty.CoinsActionWithdraw,
				Withdraw: &cty.CoinsWithdraw{Amount: amount, ExecName: exec},
			}, address.ExecAddress(cty.CoinsX))
		},
	}
	cmd.Flags().StringP("exec", "e", "socialgame", "contract name")
	cmd.Flags().StringP("amount", "a", "0", "amount in coins")
	return cmd
}
