// Package devserver runs a local HTTP backend answering the same endpoints
// as the client's built-in mock, so the live request path can be exercised
// end to end. It also serves the injected runtime configuration.
package devserver

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/starterkit/internal/client/apiclient"
	"github.com/dmitrijs2005/starterkit/internal/client/env"
	"github.com/dmitrijs2005/starterkit/internal/devserver/config"
	"github.com/dmitrijs2005/starterkit/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *Server
}

func NewApp(c *config.Config) *App {
	logger := logging.NewDefault(c.LogLevel, os.Stdout)

	// the dev server answers immediately; latency is the mock's concern
	mock := apiclient.NewMock()
	mock.Delay = 0

	router := NewRouter(mock, env.NewReader(env.FileSource{Path: c.RuntimeEnvFile}), logger)

	return &App{config: c, logger: logger, server: NewServer(c.ListenAddr, router, logger)}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until a termination signal arrives, ctx is done or the server
// fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting dev server...", "env_file", app.config.RuntimeEnvFile)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
