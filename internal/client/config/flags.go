package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/sitrack/internal/flagx"
)

var knownFlags = []string{"-a", "-d", "-t", "-k", "-l", "-o"}

// parseFlags populates Config fields from command-line flags.
//
//	-a string     backend base URL
//	-d string     path of the local SQLite database
//	-t duration   request timeout, e.g. 10s
//	-k string     secret used to seal the stored token
//	-l string     log level (debug, info, warn, error)
//	-o string     directory for exported reports
//
// os.Args is filtered with flagx.FilterArgs so flags owned by other
// components do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.StorageSecret, "k", cfg.StorageSecret, "token storage secret")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "report export directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
