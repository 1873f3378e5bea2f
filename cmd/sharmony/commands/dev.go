// Package commands implements the single process dev chain: a statedb,
// a local index db, and the executor, driven transaction by
// transaction from the command line.
package commands

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/socialharmony/chain/account"
	"github.com/socialharmony/chain/common"
	"github.com/socialharmony/chain/common/address"
	"github.com/socialharmony/chain/common/crypto"
	dbm "github.com/socialharmony/chain/common/db"
	"github.com/socialharmony/chain/executor"
	gty "github.com/socialharmony/chain/plugin/dapp/gametoken/types"
	rty "github.com/socialharmony/chain/plugin/dapp/report/types"
	gt "github.com/socialharmony/chain/plugin/dapp/socialgame/types"
	"github.com/socialharmony/chain/types"
)

var heightKey = []byte("devchain-height")

const configTemplate = `title = "%s"

[log]
loglevel = "debug"
logConsoleLevel = "info"
logFile = "logs/sharmony.log"
maxFileSize = 300
maxBackups = 100
maxAge = 28

[exec.sub.report]
owner = "%s"

[exec.sub.gametoken]
defaultTarget = 100
defaultEndorsers = 20
`

// DevCmd is the dev chain command tree.
func DevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Single process dev chain",
	}
	cmd.PersistentFlags().StringP("dir", "d", "devchain", "dev chain data directory")
	cmd.AddCommand(initCmd(), keyCmd(), genesisCmd(), applyCmd(), queryCmd(), accountCmd())
	return cmd
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a fresh dev chain config",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			owner, _ := cmd.Flags().GetString("report-owner")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			title := "sharmony-" + uuid.New().String()
			path := filepath.Join(dir, "sharmony.toml")
			if err := os.WriteFile(path, []byte(fmt.Sprintf(configTemplate, title, owner)), 0o644); err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
	cmd.Flags().String("report-owner", "", "address owning the report driver")
	return cmd
}

func keyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Generate a key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			priv, err := crypto.GenKey()
			if err != nil {
				return err
			}
			fmt.Println("privkey", common.ToHex(priv.Bytes()))
			fmt.Println("addr", address.PubKeyToAddress(priv.PubKey().Bytes()).String())
			return nil
		},
	}
}

type devChain struct {
	cfg     *types.Config
	statedb dbm.DB
	localdb dbm.DB
	exec    *executor.Executor
}

func openChain(cmd *cobra.Command) (*devChain, error) {
	dir, _ := cmd.Flags().GetString("dir")
	cfg, err := types.InitCfg(filepath.Join(dir, "sharmony.toml"))
	if err != nil {
		return nil, errors.Wrap(err, "load config, run dev init first")
	}
	statedb := dbm.NewDB("state", "leveldb", filepath.Join(dir, "state"), 16)
	localdb := dbm.NewDB("local", "leveldb", filepath.Join(dir, "local"), 16)
	return &devChain{
		cfg:     cfg,
		statedb: statedb,
		localdb: localdb,
		exec:    executor.New(cfg, statedb, dbm.NewKVDB(localdb)),
	}, nil
}

func (c *devChain) close() {
	c.statedb.Close()
	c.localdb.Close()
}

func (c *devChain) height() int64 {
	value, err := c.localdb.Get(heightKey)
	if err != nil || len(value) != 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(value))
}

func (c *devChain) bumpHeight() int64 {
	next := c.height() + 1
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(next))
	c.localdb.Set(heightKey, value)
	return next
}

func genesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Credit an address with fresh coins",
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := openChain(cmd)
			if err != nil {
				return err
			}
			defer chain.close()
			addr, _ := cmd.Flags().GetString("addr")
			amount, _ := cmd.Flags().GetInt64("amount")
			acc := account.NewCoinsAccount()
			acc.SetDB(chain.statedb)
			if _, err := acc.GenesisInit(addr, amount*types.Coin); err != nil {
				return err
			}
			fmt.Println("balance", acc.LoadAccount(addr).Balance)
			return nil
		},
	}
	cmd.Flags().StringP("addr", "a", "", "address to fund")
	cmd.MarkFlagRequired("addr")
	cmd.Flags().Int64P("amount", "n", 1000000, "amount in whole coins")
	return cmd
}

func applyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Sign a raw transaction and apply it at the next height",
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := openChain(cmd)
			if err != nil {
				return err
			}
			defer chain.close()
			keyHex, _ := cmd.Flags().GetString("key")
			rawHex, _ := cmd.Flags().GetString("data")
			priv, err := crypto.PrivKeyFromHex(keyHex)
			if err != nil {
				return err
			}
			raw, err := common.FromHex(rawHex)
			if err != nil {
				return err
			}
			var tx types.Transaction
			if err := types.Decode(raw, &tx); err != nil {
				return err
			}
			tx.Sign(types.SECP256K1, priv)
			height := chain.bumpHeight()
			chain.exec.SetEnv(height, time.Now().Unix(), 1)
			receipt, err := chain.exec.Apply(&tx, 0)
			if err != nil {
				return err
			}
			fmt.Println("height", height, "txhash", common.ToHex(tx.Hash()))
			for _, l := range receipt.GetLogs() {
				fmt.Println("log", l.Ty)
			}
			return nil
		},
	}
	cmd.Flags().StringP("key", "k", "", "signing private key, hex")
	cmd.MarkFlagRequired("key")
	cmd.Flags().StringP("data", "t", "", "raw transaction, hex")
	cmd.MarkFlagRequired("data")
	return cmd
}

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a driver query",
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := openChain(cmd)
			if err != nil {
				return err
			}
			defer chain.close()
			execer, _ := cmd.Flags().GetString("execer")
			funcName, _ := cmd.Flags().GetString("func")
			params, err := buildQueryParams(cmd, execer)
			if err != nil {
				return err
			}
			msg, err := chain.exec.Query(execer, funcName, params)
			if err != nil {
				return err
			}
			fmt.Println(msg.String())
			return nil
		},
	}
	cmd.Flags().StringP("execer", "e", gt.SocialGameX, "driver name")
	cmd.Flags().StringP("func", "f", gt.FuncNameGameInfo, "query function")
	cmd.Flags().StringP("gameid", "g", "", "game id")
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.Flags().Int64P("tokenid", "i", 0, "token id")
	cmd.Flags().Int64("ts", 0, "timestamp selecting a report period")
	cmd.Flags().StringP("key", "k", "", "report key")
	cmd.Flags().StringP("category", "c", "", "report category")
	cmd.Flags().Int32("status", gt.GameStatusActive, "game status filter")
	return cmd
}

func buildQueryParams(cmd *cobra.Command, execer string) ([]byte, error) {
	gameId, _ := cmd.Flags().GetString("gameid")
	addr, _ := cmd.Flags().GetString("addr")
	tokenId, _ := cmd.Flags().GetInt64("tokenid")
	ts, _ := cmd.Flags().GetInt64("ts")
	key, _ := cmd.Flags().GetString("key")
	category, _ := cmd.Flags().GetString("category")
	status, _ := cmd.Flags().GetInt32("status")
	switch execer {
	case gt.SocialGameX:
		if addr != "" && gameId != "" {
			return types.Encode(&gt.ReqAddrGame{GameId: gameId, Addr: addr}), nil
		}
		if gameId != "" {
			return types.Encode(&gt.ReqGameInfo{GameId: gameId}), nil
		}
		return types.Encode(&gt.ReqGameList{Status: status, Addr: addr}), nil
	case gty.GameTokenX:
		if addr != "" {
			return types.Encode(&gty.ReqTokensByOwner{Addr: addr}), nil
		}
		return types.Encode(&gty.ReqTokenInfo{TokenId: tokenId}), nil
	case rty.ReportX:
		return types.Encode(&rty.ReqReport{Ts: ts, Key: key, Category: category, Addr: addr}), nil
	}
	return nil, types.ErrQueryNotSupport
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Print an address balance and its contract sub balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, err := openChain(cmd)
			if err != nil {
				return err
			}
			defer chain.close()
			addr, _ := cmd.Flags().GetString("addr")
			acc := account.NewCoinsAccount()
			acc.SetDB(chain.statedb)
			fmt.Println("balance", acc.LoadAccount(addr).Balance)
			for _, name := range []string{gt.SocialGameX, gty.GameTokenX} {
				execaddr := address.ExecAddress(name)
				sub := acc.LoadExecAccount(addr, execaddr)
				fmt.Println(name, "balance", sub.Balance, "frozen", sub.Frozen)
			}
			return nil
		},
	}
	cmd.Flags().StringP("addr", "a", "", "address")
	cmd.MarkFlagRequired("addr")
	return cmd
}
