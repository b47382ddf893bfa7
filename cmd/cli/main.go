package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/taskpilot/internal/buildinfo"
	"github.com/dmitrijs2005/taskpilot/internal/cli"
	"github.com/dmitrijs2005/taskpilot/internal/config"
	"github.com/dmitrijs2005/taskpilot/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// A local .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
