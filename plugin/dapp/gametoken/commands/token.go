// Package commands builds raw gametoken transactions for the dev
// tools.
package commands

import (
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/socialharmony/chain/common"
	"github.com/socialharmony/chain/common/address"
	gty "github.com/socialharmony/chain/plugin/dapp/gametoken/types"
	sgcommands "github.com/socialharmony/chain/plugin/dapp/socialgame/commands"
	"github.com/socialharmony/chain/types"
)

// GameTokenCmd is the command tree of the token ledger.
func GameTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Participation receipt transactions",
	}
	cmd.AddCommand(transferRawCmd(), foundRawCmd())
	return cmd
}

func printRawTx(transfer *gty.TokenTransfer) {
	action := &gty.TokenAction{Ty: gty.TokenActionTransfer, Transfer: transfer}
	tx := &types.Transaction{
		Execer:  []byte(gty.GameTokenX),
		Payload: types.Encode(action),
		Fee:     types.Coin / 100,
		Nonce:   rand.Int63(),
		To:      address.ExecAddress(gty.GameTokenX),
	}
	fmt.Println(common.ToHex(types.Encode(tx)))
}

func transferRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Build a raw token transfer; aim it at a game pool to endorse",
		Run: func(cmd *cobra.Command, args []string) {
			tokenId, _ := cmd.Flags().GetInt64("tokenid")
			to, _ := cmd.Flags().GetString("to")
			printRawTx(&gty.TokenTransfer{TokenId: tokenId, To: to})
		},
	}
	cmd.Flags().Int64P("tokenid", "i", 0, "token id")
	cmd.MarkFlagRequired("tokenid")
	cmd.Flags().StringP("to", "t", "", "destination address")
	cmd.MarkFlagRequired("to")
	return cmd
}

func factoryWord(v int64) []byte {
	word := make([]byte, 32)
	binary.BigEndian.PutUint64(word[24:], uint64(v))
	return word
}

func foundRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "found",
		Short: "Build a raw founding transfer, consuming a token to open a game",
		Run: func(cmd *cobra.Command, args []string) {
			tokenId, _ := cmd.Flags().GetInt64("tokenid")
			target, _ := cmd.Flags().GetInt64("target")
			price, _ := cmd.Flags().GetString("price")
			endorsers, _ := cmd.Flags().GetInt64("endorsers")
			var payload []byte
			if cmd.Flags().Changed("target") || cmd.Flags().Changed("price") || cmd.Flags().Changed("endorsers") {
				amount, err := sgcommands.ParseCoinAmount(price)
				if err != nil {
					fmt.Println(err)
					return
				}
				payload = factoryWord(target)
				payload = append(payload, factoryWord(amount)...)
				payload = append(payload, factoryWord(endorsers)...)
			}
			printRawTx(&gty.TokenTransfer{
				TokenId: tokenId,
				To:      address.ExecAddress(gty.GameTokenX),
				Payload: payload,
			})
		},
	}
	cmd.Flags().Int64P("tokenid", "i", 0, "token id to consume")
	cmd.MarkFlagRequired("tokenid")
	cmd.Flags().Int64P("target", "t", 100, "participant target")
	cmd.Flags().StringP("price", "p", "1", "entry price in coins")
	cmd.Flags().Int64P("endorsers", "e", 20, "required endorsers")
	return cmd
}
