package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/sitrack/internal/buildinfo"
	"github.com/dmitrijs2005/sitrack/internal/devserver"
	"github.com/dmitrijs2005/sitrack/internal/devserver/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := devserver.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}

}
