package types

import (
	"github.com/BurntSushi/toml"
)

// Config is the top level TOML configuration.
type Config struct {
	Title string `toml:"title,omitempty"`
	Log   *Log   `toml:"log,omitempty"`
	Exec  *Exec  `toml:"exec,omitempty"`
}

// Log configures the console and rotating file handlers.
type Log struct {
	Loglevel        string `toml:"loglevel,omitempty"`
	LogConsoleLevel string `toml:"logConsoleLevel,omitempty"`
	LogFile         string `toml:"logFile,omitempty"`
	MaxFileSize     uint32 `toml:"maxFileSize,omitempty"`
	MaxBackups      uint32 `toml:"maxBackups,omitempty"`
	MaxAge          uint32 `toml:"maxAge,omitempty"`
	LocalTime       bool   `toml:"localTime,omitempty"`
	Compress        bool   `toml:"compress,omitempty"`
	CallerFile      bool   `toml:"callerFile,omitempty"`
	CallerFunction  bool   `toml:"callerFunction,omitempty"`
}

// Exec holds per dapp sub configuration, keyed by driver name under
// [exec.sub.<name>].
type Exec struct {
	Sub map[string]map[string]interface{} `toml:"sub,omitempty"`
}

// InitCfg loads a TOML config file.
func InitCfg(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitCfgString parses an inline TOML config, panicking on error. Used
// by tests and defaults.
func InitCfgString(content string) *Config {
	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// ConfSub returns a typed view over a dapp sub configuration. All
// getters take a default for missing or mistyped keys, so dapps run
// with an empty config.
func (c *Config) ConfSub(name string) *ConfQuery {
	if c == nil || c.Exec == nil {
		return &ConfQuery{}
	}
	return &ConfQuery{cfg: c.Exec.Sub[name]}
}

// ConfQuery reads values out of one [exec.sub.<name>] table.
type ConfQuery struct {
	cfg map[string]interface{}
}

// GInt reads an integer key.
func (q *ConfQuery) GInt(key string, def int64) int64 {
	if q == nil || q.cfg == nil {
		return def
	}
	if v, ok := q.cfg[key].(int64); ok {
		return v
	}
	return def
}

// GStr reads a string key.
func (q *ConfQuery) GStr(key string, def string) string {
	if q == nil || q.cfg == nil {
		return def
	}
	if v, ok := q.cfg[key].(string); ok {
		return v
	}
	return def
}

// GBool reads a boolean key.
func (q *ConfQuery) GBool(key string, def bool) bool {
	if q == nil || q.cfg == nil {
		return def
	}
	if v, ok := q.cfg[key].(bool); ok {
		return v
	}
	return def
}
