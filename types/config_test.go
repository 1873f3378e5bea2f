package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfSub(t *testing.T) {
	cfg := InitCfgString(`
title = "test-chain"

[exec.sub.report]
owner = "1BQXS6TxaYYG5mADaWij4AxhZZUTpw95a5"

[exec.sub.gametoken]
defaultTarget = 5
verified = true
`)
	assert.Equal(t, "test-chain", cfg.Title)
	assert.Equal(t, "1BQXS6TxaYYG5mADaWij4AxhZZUTpw95a5", cfg.ConfSub("report").GStr("owner", ""))
	assert.Equal(t, int64(5), cfg.ConfSub("gametoken").GInt("defaultTarget", 100))
	assert.True(t, cfg.ConfSub("gametoken").GBool("verified", false))

	// missing keys and tables fall back to defaults
	assert.Equal(t, int64(20), cfg.ConfSub("gametoken").GInt("defaultEndorsers", 20))
	assert.Equal(t, "", cfg.ConfSub("nosuch").GStr("owner", ""))

	var nilCfg *Config
	assert.Equal(t, int64(7), nilCfg.ConfSub("x").GInt("y", 7))
}
