package config

import (
	"flag"
	"os"
	"time"

	"markbook/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN (empty selects the file backend)
//	-f string   data directory for the file backend
//	-l int      document lock timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DataDir, "f", config.DataDir, "data directory")

	lockTimeout := fs.Int("l", int(config.LockTimeout.Seconds()), "lock timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.LockTimeout = time.Duration(*lockTimeout) * time.Second
}
