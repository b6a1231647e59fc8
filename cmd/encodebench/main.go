// Package main provides the entry point for encodebench.
//
// With no arguments it shifts "Hello, World!" by 3 one million times and
// prints the elapsed time.
package main

import (
	"context"
	"os"

	"github.com/yndnr/encodebench/internal/cli/command"
	"github.com/yndnr/encodebench/internal/infra/shutdown"
)

func main() {
	ctx, stop := shutdown.WithSignals(context.Background())

	err := command.App().RunContext(ctx, os.Args)
	stop()

	if err != nil {
		command.PrintError(os.Stderr, "%v", err)
		os.Exit(1)
	}
}
