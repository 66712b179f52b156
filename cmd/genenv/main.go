package main

import (
	"context"
	"flag"
	"os"

	"github.com/dmitrijs2005/starterkit/internal/envgen"
	"github.com/dmitrijs2005/starterkit/internal/logging"
)

func main() {
	var opts envgen.Options
	flag.StringVar(&opts.DotEnvPath, "env", ".env", "dotenv file to read")
	flag.StringVar(&opts.JSONPath, "json", "public/env.json", "runtime env document to write (empty to skip)")
	flag.StringVar(&opts.JSPath, "js", "public/env.js", "browser env script to write (empty to skip)")
	flag.Parse()

	ctx := context.Background()
	logger := logging.NewDefault("info", os.Stderr)

	cfg, err := envgen.Generate(opts)
	if err != nil {
		logger.Error(ctx, "generate runtime env", "error", err)
		os.Exit(1)
	}

	logger.Info(ctx, "runtime env generated",
		"API_BASE_URL", cfg.APIBaseURL,
		"APP_ENV", cfg.AppEnv,
		"json", opts.JSONPath,
		"js", opts.JSPath,
	)
}
