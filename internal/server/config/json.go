package config

import (
	"encoding/json"
	"os"
	"time"

	"markbook/internal/flagx"
	"markbook/internal/timex"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "5s" and integer nanoseconds. After unmarshalling,
// its fields are copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddr string         `json:"endpoint_addr"`
	DatabaseDSN  string         `json:"database_dsn"`
	DataDir      string         `json:"data_dir"`
	LockTimeout  timex.Duration `json:"lock_timeout"`
}

// parseJson loads configuration values from the JSON file given via the
// -c or -config flags into the provided Config. When neither flag is set,
// nothing is loaded. Unreadable or invalid files panic, matching flag
// parsing behavior.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.DataDir = c.DataDir
	config.LockTimeout = time.Duration(c.LockTimeout.Duration)
}
