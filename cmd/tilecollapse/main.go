// Package main is the entry point for tilecollapse.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/tilecollapse/internal/cli"
	"github.com/samdwyer/tilecollapse/internal/telemetry"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx))
}

func run(ctx context.Context) int {
	c := cli.New(os.Stderr, cli.LogInfo)
	defer c.Close()

	// .env is optional; variables may be set directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		c.Logger.Warn("could not load .env", "err", err)
	}

	telemetry.ConfigureEnv()
	shutdown, err := telemetry.Setup(ctx, cli.Version)
	if err != nil {
		c.Logger.Warn("telemetry disabled", "err", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				c.Logger.Warn("telemetry shutdown failed", "err", err)
			}
		}()
	}

	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		c.Logger.Error(err.Error())
		return 1
	}
	return 0
}
