package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/contacto/internal/flagx"
	"github.com/dmitrijs2005/contacto/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// use timex.Duration so they may be strings like "3s" or integer
// nanoseconds.
type JsonConfig struct {
	APIURL         string         `json:"api_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DBPath         string         `json:"db_path"`
	LogLevel       string         `json:"log_level"`
	Notices        struct {
		Create timex.Duration `json:"create"`
		Update timex.Duration `json:"update"`
		Delete timex.Duration `json:"delete"`
		Error  timex.Duration `json:"error"`
	} `json:"notices"`
}

// parseJson overlays cfg with the keys present in the file given by -c or
// -config. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIURL != "" {
		cfg.APIURL = jc.APIURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}

	setIfPositive(&cfg.Notices.Create, jc.Notices.Create)
	setIfPositive(&cfg.Notices.Update, jc.Notices.Update)
	setIfPositive(&cfg.Notices.Delete, jc.Notices.Delete)
	setIfPositive(&cfg.Notices.Error, jc.Notices.Error)
}

func setIfPositive(dst *time.Duration, d timex.Duration) {
	if d.Duration > 0 {
		*dst = d.Duration
	}
}
