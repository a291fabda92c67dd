package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/hackorsnooze/snooze/internal/cli"
	"github.com/hackorsnooze/snooze/internal/config"
	"github.com/hackorsnooze/snooze/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
