package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	devcommands "github.com/socialharmony/chain/cmd/sharmony/commands"
	clog "github.com/socialharmony/chain/common/log"
	gametokencommands "github.com/socialharmony/chain/plugin/dapp/gametoken/commands"
	reportcommands "github.com/socialharmony/chain/plugin/dapp/report/commands"
	socialgamecommands "github.com/socialharmony/chain/plugin/dapp/socialgame/commands"
	coinscommands "github.com/socialharmony/chain/system/dapp/coins/commands"

	_ "github.com/socialharmony/chain/plugin"
)

func main() {
	clog.SetLogLevel("info")
	rootCmd := &cobra.Command{
		Use:   "sharmony",
		Short: "sharmony fundraising game chain tools",
	}
	rootCmd.AddCommand(
		devcommands.DevCmd(),
		coinscommands.CoinsCmd(),
		socialgamecommands.SocialGameCmd(),
		gametokencommands.GameTokenCmd(),
		reportcommands.ReportCmd(),
	)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
