// Package config loads runtime settings for the storefront CLI. Values are
// resolved in three layers, later layers winning: built-in defaults, an
// optional JSON file (-c/-config), then command-line flags.
package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the remote storefront service.
//   - DatabaseDSN: path of the client-local sqlite database.
//   - PollInterval: how often the catalog is re-fetched and re-merged.
//   - SearchDebounce: quiet period before a typed search term is applied.
type Config struct {
	ServerEndpointAddr string
	DatabaseDSN        string
	PollInterval       time.Duration
	SearchDebounce     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:5000"
	c.DatabaseDSN = "storefront.db"
	c.PollInterval = 5 * time.Second
	c.SearchDebounce = 300 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
