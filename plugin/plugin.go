// Package plugin pulls every dapp executor into the binary through
// their init registrations.
package plugin

import (
	_ "github.com/socialharmony/chain/plugin/dapp/gametoken/executor"
	_ "github.com/socialharmony/chain/plugin/dapp/report/executor"
	_ "github.com/socialharmony/chain/plugin/dapp/socialgame/executor"
	_ "github.com/socialharmony/chain/system/dapp/coins/executor"
)
