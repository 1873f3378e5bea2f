// Package commands builds raw report transactions for the dev tools.
package commands

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/socialharmony/chain/common"
	"github.com/socialharmony/chain/common/address"
	rty "github.com/socialharmony/chain/plugin/dapp/report/types"
	"github.com/socialharmony/chain/types"
)

// ReportCmd is the command tree of the aggregator.
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Weekly report transactions",
	}
	cmd.AddCommand(updateRawCmd(), updateKeyRawCmd(), grantRawCmd(), revokeRawCmd())
	return cmd
}

func printRawTx(action *rty.ReportAction) {
	tx := &types.Transaction{
		Execer:  []byte(rty.ReportX),
		Payload: types.Encode(action),
		Fee:     types.Coin / 100,
		Nonce:   rand.Int63(),
		To:      address.ExecAddress(rty.ReportX),
	}
	fmt.Println(common.ToHex(types.Encode(tx)))
}

func updateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", "report key, empty for a global only update")
	cmd.Flags().StringP("category", "c", "", "optional category tag")
	cmd.Flags().Int64P("amount", "a", 0, "amount to add")
}

func readUpdate(cmd *cobra.Command) *rty.ReportUpdate {
	key, _ := cmd.Flags().GetString("key")
	category, _ := cmd.Flags().GetString("category")
	amount, _ := cmd.Flags().GetInt64("amount")
	return &rty.ReportUpdate{Key: key, Category: category, Amount: amount}
}

func updateRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Build a raw report update",
		Run: func(cmd *cobra.Command, args []string) {
			printRawTx(&rty.ReportAction{Ty: rty.ReportActionUpdate, Update: readUpdate(cmd)})
		},
	}
	updateFlags(cmd)
	return cmd
}

func updateKeyRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-key",
		Short: "Build a raw key only update, leaving the global sum alone",
		Run: func(cmd *cobra.Command, args []string) {
			printRawTx(&rty.ReportAction{Ty: rty.ReportActionUpdateKey, UpdateKey: readUpdate(cmd)})
		},
	}
	updateFlags(cmd)
	cmd.MarkFlagRequired("key")
	return cmd
}

func grantRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Build a raw write grant, owner only",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			printRawTx(&rty.ReportAction{Ty: rty.ReportActionGrant, Grant: &rty.ReportGrant{Addr: addr}})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "writer address")
	cmd.MarkFlagRequired("addr")
	return cmd
}

func revokeRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Build a raw write revocation, owner only",
		Run: func(cmd *cobra.Command, args []string) {
			addr, _ := cmd.Flags().GetString("addr")
			printRawTx(&rty.ReportAction{Ty: rty.ReportActionRevoke, Revoke: &rty.ReportGrant{Addr: addr}})
		},
	}
	cmd.Flags().StringP("addr", "a", "", "writer address")
	cmd.MarkFlagRequired("addr")
	return cmd
}
