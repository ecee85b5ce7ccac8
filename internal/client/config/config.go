package config

import (
	"time"

	"github.com/dmitrijs2005/contacto/internal/client/notify"
)

// Config holds runtime settings for the contacts CLI.
//
// Fields:
//   - APIURL: base URL of the contacts API; requests go to APIURL + "/contacto".
//   - RequestTimeout: upper bound for a single API call.
//   - DBPath: SQLite file holding local metadata such as the signed-in user.
//   - LogLevel: DEBUG, INFO, WARN or ERROR.
//   - Notices: how long each kind of notice stays visible.
type Config struct {
	APIURL         string
	RequestTimeout time.Duration
	DBPath         string
	LogLevel       string
	Notices        notify.Lifetimes
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.DBPath = "contacto.db"
	c.LogLevel = "INFO"
	c.Notices = notify.DefaultLifetimes()
}

// LoadConfig constructs a Config, applies defaults, then overlays the
// environment, JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
