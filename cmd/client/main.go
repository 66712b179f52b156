package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/starterkit/internal/buildinfo"
	"github.com/dmitrijs2005/starterkit/internal/client/apiclient"
	"github.com/dmitrijs2005/starterkit/internal/client/auth"
	"github.com/dmitrijs2005/starterkit/internal/client/cli"
	"github.com/dmitrijs2005/starterkit/internal/client/config"
	"github.com/dmitrijs2005/starterkit/internal/client/env"
	"github.com/dmitrijs2005/starterkit/internal/client/state"
	"github.com/dmitrijs2005/starterkit/internal/client/storage"
	"github.com/dmitrijs2005/starterkit/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel, os.Stderr)

	// A database that cannot be opened leaves the store in memory-only mode.
	var backend storage.Backend
	db, err := storage.OpenSQLite(ctx, cfg.StorageFile)
	if err != nil {
		logger.Warn(ctx, "persistent storage unavailable, using memory", "file", cfg.StorageFile, "error", err)
	} else {
		defer db.Close()
		backend = db
	}

	kv := storage.NewSafeStore(backend, logger.With("component", "storage"))
	tokens := auth.NewTokens(kv)
	envReader := env.NewReader(env.FileSource{Path: cfg.RuntimeEnvFile})

	api := apiclient.New(envReader, tokens,
		apiclient.WithTimeout(cfg.RequestTimeout),
		apiclient.WithLogger(logger.With("component", "api")),
	)

	app := cli.NewApp(cli.Deps{
		API:       api,
		Creds:     tokens,
		Env:       envReader,
		AuthStore: state.NewAuthStore(ctx, tokens),
		Theme:     state.NewThemeStore(ctx, kv),
		Log:       logger,
	})

	app.Run(ctx)
}
