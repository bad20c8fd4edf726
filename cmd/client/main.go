package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/sitrack/internal/buildinfo"
	"github.com/dmitrijs2005/sitrack/internal/client/cli"
	"github.com/dmitrijs2005/sitrack/internal/client/config"
	"github.com/dmitrijs2005/sitrack/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
