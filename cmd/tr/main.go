package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/matt11seven/tr/config"
	"github.com/matt11seven/tr/internal/app"
	"github.com/matt11seven/tr/internal/cli"
	"github.com/matt11seven/tr/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	application := app.New(cfg, logger)
	defer application.Close()

	deps := &cli.Dependencies{
		App:    application,
		Config: cfg,
	}

	return cli.NewRootCmd(deps).Execute()
}

func logLevel() slog.Level {
	if os.Getenv("TR_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
