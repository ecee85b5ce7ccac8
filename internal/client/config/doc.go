// Package config loads runtime configuration for the contacts CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a dotenv file given
//     with -env (or ./.env when present). Variables already exported win
//     over the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Environment
//
//	CONTACTO_API_URL          base URL of the contacts API
//	CONTACTO_REQUEST_TIMEOUT  per-request timeout, e.g. "10s"
//	CONTACTO_DB               path of the local SQLite database
//	LOG_LEVEL                 DEBUG, INFO, WARN or ERROR
//
// Supported flags
//
//	-u string   base URL of the contacts API
//	-t int      request timeout (seconds)
//	-d string   local database path
//
// # JSON schema
//
// Durations are either strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_url": "http://localhost:8080",
//	  "request_timeout": "10s",
//	  "db_path": "contacto.db",
//	  "log_level": "INFO",
//	  "notices": {"create": "1s", "update": "2s", "delete": "1s", "error": "5s"}
//	}
package config
