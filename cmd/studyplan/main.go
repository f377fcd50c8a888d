// Package main is the entry point for the studyplan CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"studyplan/internal/cli"
	"studyplan/internal/commands"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Cancel on interrupt so an in-flight write can give up cleanly
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, cli.OpenStore)
	return dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
