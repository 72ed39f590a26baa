package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"boulouiha.dev/internal/cli"
	"boulouiha.dev/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, tui.FormatError(err.Error()))
		stop()
		os.Exit(1)
	}
}
