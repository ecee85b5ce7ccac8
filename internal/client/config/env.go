package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/contacto/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	envAPIURL         = "CONTACTO_API_URL"
	envRequestTimeout = "CONTACTO_REQUEST_TIMEOUT"
	envDBPath         = "CONTACTO_DB"
	envLogLevel       = "LOG_LEVEL"
)

// parseEnv overlays cfg with environment variables. A dotenv file named by
// -env must exist; ./.env is optional. Invalid durations panic.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v := os.Getenv(envAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("%s: %w", envRequestTimeout, err))
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv(envDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
