package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/contacto/internal/flagx"
	"github.com/dmitrijs2005/contacto/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration file.
// Durations accept both "5s" style strings and integer nanoseconds.
type JsonConfig struct {
	Addr            string         `json:"addr"`
	LogLevel        string         `json:"log_level"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads the file named by -c/-config into config. Only keys
// present in the file replace current values. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
