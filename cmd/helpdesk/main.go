package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"helpdesk/internal/interfaces/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(cli.ExitCode(err))
	}
}
