// Package main is the entry point for the cookbook CLI.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/cookbook/cmd/cookbook/commands"
	"go.trai.ch/cookbook/internal/app"
	"go.trai.ch/cookbook/internal/core/domain"
	_ "go.trai.ch/cookbook/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...graft.Option) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx, opts...)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// The check report already lists every failing recipe.
		if errors.Is(err, domain.ErrInvalidRecipes) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
