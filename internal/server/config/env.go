package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/contacto/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	envAddr     = "CONTACTO_ADDR"
	envLogLevel = "LOG_LEVEL"
)

// parseEnv overlays values from the process environment. A dotenv file named
// by -env is loaded first and must exist; otherwise ./.env is loaded when
// present. Variables already set in the environment are never overridden.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v, ok := os.LookupEnv(envAddr); ok && v != "" {
		config.Addr = v
	}
	if v, ok := os.LookupEnv(envLogLevel); ok && v != "" {
		config.LogLevel = v
	}
}
