package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/starterkit/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   listen address (e.g. ":8080")
//	-e string   runtime env document
//	-l string   log level
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.RuntimeEnvFile, "e", config.RuntimeEnvFile, "runtime env document (env.json)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
