// Package config handles configuration for the CLI client, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the CareKeeper CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST endpoint, including the
//     /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: path of the local SQLite file holding the persisted
//     session token.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:3001/api"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "carekeeper.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
