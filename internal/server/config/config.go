// Package config handles configuration for the reference API server,
// including defaults, environment, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the contacts API server.
//
// Fields:
//   - Addr: bind address for the HTTP listener.
//   - LogLevel: DEBUG, INFO, WARN or ERROR.
//   - ShutdownTimeout: how long in-flight requests may run after a signal.
type Config struct {
	Addr            string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.LogLevel = "INFO"
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then the environment
// (optionally seeded from a .env file), then an optional JSON file and
// finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
