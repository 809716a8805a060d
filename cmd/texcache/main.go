// Package main is the entry point for the texcache CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/texcache/cmd/texcache/commands"
	"go.trai.ch/texcache/internal/app"
	_ "go.trai.ch/texcache/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var components *app.Components
	cli := commands.New(func(ctx context.Context) (commands.Application, error) {
		c, err := provider(ctx)
		if err != nil {
			return nil, err
		}
		components = c
		return c.App, nil
	})
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if components == nil {
			// Logger is not available yet if initialization failed
			// zerr prints metadata with %+v
			_, _ = fmt.Fprintf(stderr, "Error: %+v\n", err)
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
