// Package commands builds raw socialgame transactions for the dev
// tools.
package commands

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/socialharmony/chain/common"
	"github.com/socialharmony/chain/common/address"
	gt "github.com/socialharmony/chain/plugin/dapp/socialgame/types"
	"github.com/socialharmony/chain/types"
)

// SocialGameCmd is the command tree of the game driver.
func SocialGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Fundraising game transactions",
	}
	cmd.AddCommand(
		createRawCmd(),
		participateRawCmd(),
		cancelRawCmd(),
		refundRawCmd(),
		withdrawRawCmd(),
		claimPrizeRawCmd(),
		claimEndorsementRawCmd(),
		refundEndorsementRawCmd(),
	)
	return cmd
}

// ParseCoinAmount turns a decimal coin string into base units.
func ParseCoinAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return d.Mul(decimal.New(types.Coin, 0)).IntPart(), nil
}

func printRawTx(action *gt.GameAction) {
	tx := &types.Transaction{
		Execer:  []byte(gt.SocialGameX),
		Payload: types.Encode(action),
		Fee:     types.Coin / 100,
		Nonce:   rand.Int63(),
		To:      address.ExecAddress(gt.SocialGameX),
	}
	fmt.Println(common.ToHex(types.Encode(tx)))
}

func createRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Build a raw game create transaction",
		Run: func(cmd *cobra.Command, args []string) {
			target, _ := cmd.Flags().GetInt64("target")
			price, _ := cmd.Flags().GetString("price")
			endorsers, _ := cmd.Flags().GetInt64("endorsers")
			beneficiary, _ := cmd.Flags().GetString("beneficiary")
			amount, err := ParseCoinAmount(price)
			if err != nil {
				fmt.Println(err)
				return
			}
			printRawTx(&gt.GameAction{
				Ty: gt.GameActionCreate,
				Create: &gt.GameCreate{
					Beneficiary:        beneficiary,
					TargetParticipants: target,
					PricePerEntry:      amount,
					RequiredEndorsers:  endorsers,
				},
			})
		},
	}
	cmd.Flags().Int64P("target", "t", 100, "participant target")
	cmd.Flags().StringP("price", "p", "1", "entry price in coins")
	cmd.Flags().Int64P("endorsers", "e", 0, "required endorsers")
	cmd.Flags().StringP("beneficiary", "b", "", "beneficiary address, defaults to the sender")
	return cmd
}

func participateRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "participate",
		Short: "Build a raw participate transaction",
		Run: func(cmd *cobra.Command, args []string) {
			gameId, _ := cmd.Flags().GetString("gameid")
			price, _ := cmd.Flags().GetString("price")
			amount, err := ParseCoinAmount(price)
			if err != nil {
				fmt.Println(err)
				return
			}
			printRawTx(&gt.GameAction{
				Ty:          gt.GameActionParticipate,
				Participate: &gt.GameParticipate{GameId: gameId, Amount: amount},
			})
		},
	}
	cmd.Flags().StringP("gameid", "g", "", "game id")
	cmd.MarkFlagRequired("gameid")
	cmd.Flags().StringP("price", "p", "1", "entry price in coins, must match the game")
	return cmd
}

func gameIdCmd(use, short string, build func(gameId string) *gt.GameAction) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			gameId, _ := cmd.Flags().GetString("gameid")
			printRawTx(build(gameId))
		},
	}
	cmd.Flags().StringP("gameid", "g", "", "game id")
	cmd.MarkFlagRequired("gameid")
	return cmd
}

func cancelRawCmd() *cobra.Command {
	return gameIdCmd("cancel", "Build a raw cancel transaction, owner only", func(gameId string) *gt.GameAction {
		return &gt.GameAction{Ty: gt.GameActionCancel, Cancel: &gt.GameCancel{GameId: gameId}}
	})
}

func refundRawCmd() *cobra.Command {
	return gameIdCmd("refund", "Build a raw deposit refund transaction", func(gameId string) *gt.GameAction {
		return &gt.GameAction{Ty: gt.GameActionRefund, Refund: &gt.GameRefund{GameId: gameId}}
	})
}

func withdrawRawCmd() *cobra.Command {
	return gameIdCmd("withdraw", "Build a raw beneficiary withdraw transaction", func(gameId string) *gt.GameAction {
		return &gt.GameAction{Ty: gt.GameActionWithdraw, Withdraw: &gt.GameWithdraw{GameId: gameId}}
	})
}

func claimPrizeRawCmd() *cobra.Command {
	return gameIdCmd("claim-prize", "Build a raw prize claim transaction", func(gameId string) *gt.GameAction {
		return &gt.GameAction{Ty: gt.GameActionClaimPrize, ClaimPrize: &gt.GameClaimPrize{GameId: gameId}}
	})
}

func claimEndorsementRawCmd() *cobra.Command {
	return gameIdCmd("claim-endorsement", "Build a raw endorsement fee claim transaction", func(gameId string) *gt.GameAction {
		return &gt.GameAction{Ty: gt.GameActionClaimEndorsement, ClaimEndorsement: &gt.GameClaimEndorsement{GameId: gameId}}
	})
}

func refundEndorsementRawCmd() *cobra.Command {
	return gameIdCmd("refund-endorsement", "Build a raw endorsement refund transaction", func(gameId string) *gt.GameAction {
		return &gt.GameAction{Ty: gt.GameActionRefundEndorsement, RefundEndorsement: &gt.GameRefundEndorsement{GameId: gameId}}
	})
}
