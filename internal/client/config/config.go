// Package config handles configuration for the interactive CLI client.
package config

import (
	"flag"
	"os"
	"time"

	"markbook/internal/flagx"
)

// Config holds runtime settings for the CLI. The client drives the core
// directly against the file backend, so it only needs to know where the
// data lives.
type Config struct {
	DataDir     string
	LockTimeout time.Duration
}

func (c *Config) LoadDefaults() {
	c.DataDir = "./data"
	c.LockTimeout = 5 * time.Second
}

// LoadConfig applies defaults and then command-line flags.
//
// Supported flags:
//
//	-f string   data directory
//	-l int      document lock timeout, seconds
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.DataDir, "f", cfg.DataDir, "data directory")
	lockTimeout := fs.Int("l", int(cfg.LockTimeout.Seconds()), "lock timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.LockTimeout = time.Duration(*lockTimeout) * time.Second
	return cfg
}
