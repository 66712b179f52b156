package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/starterkit/internal/buildinfo"
	"github.com/dmitrijs2005/starterkit/internal/devserver"
	"github.com/dmitrijs2005/starterkit/internal/devserver/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	app := devserver.NewApp(cfg)

	app.Run(context.Background())
}
