package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/starterkit/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Only -e, -s, -t and -l are considered; os.Args is filtered with
// flagx.FilterArgs so flags of other loaders (-c) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.RuntimeEnvFile, "e", cfg.RuntimeEnvFile, "runtime env document (env.json)")
	fs.StringVar(&cfg.StorageFile, "s", cfg.StorageFile, "storage database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
