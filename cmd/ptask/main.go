// Package main is the entry point for the ptask CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"ptask/internal/backend/jsonfile"
	"ptask/internal/cli"
	"ptask/internal/commands"
	"ptask/internal/config"
	"ptask/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	factory := func(cfg *config.Config, logger *log.Logger) (service.Service, error) {
		store, err := jsonfile.New(cfg.StorePath, logger)
		if err != nil {
			return nil, err
		}
		return service.New(store, logger), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
