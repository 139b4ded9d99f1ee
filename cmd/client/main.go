package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/noteapp/internal/buildinfo"
	"github.com/dmitrijs2005/noteapp/internal/client/cli"
	"github.com/dmitrijs2005/noteapp/internal/client/config"
	"github.com/dmitrijs2005/noteapp/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(ctx, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	log := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "err", err)
		os.Exit(1)
	}
	defer app.Close(context.Background())

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "run failed", "err", err)
	}
}
