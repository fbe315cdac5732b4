// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the markbook server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). When empty, the file backend under
//     DataDir is used instead.
//   - DataDir: root directory for the file backend (accounts document plus
//     one namespace per user).
//   - LockTimeout: how long a writer waits for the document lock before
//     giving up.
type Config struct {
	EndpointAddr string
	DatabaseDSN  string
	DataDir      string
	LockTimeout  time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.DataDir = "./data"
	c.LockTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
