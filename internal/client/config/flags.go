package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/contacto/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-u string   base URL of the contacts API
//	-t int      request timeout in seconds
//	-d string   local database path
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "u", cfg.APIURL, "base URL of the contacts API")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only an explicit -t replaces the timeout; sub-second values from
	// earlier sources would not survive the round trip through seconds.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
}
