package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tfalohun/olera-sub001/internal/platform/config"
	"github.com/tfalohun/olera-sub001/internal/platform/httpserver"
	"github.com/tfalohun/olera-sub001/internal/platform/logger"
)

// main loads config, wires the matching services onto one router and runs
// until SIGINT or SIGTERM. Business logic lives in the internal modules.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	infra, err := buildInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer infra.Close()

	app, err := buildApp(cfg, infra, log)
	if err != nil {
		return err
	}

	go app.limiter.RunSweeper(ctx, cfg.RateLimit.Window)

	srv := httpserver.New(cfg.Addr, app.Router())
	log.Info("starting olera matching service",
		"addr", cfg.Addr,
		"postgres", infra.db != nil,
		"redis", infra.redis != nil,
		"kafka", infra.producer != nil,
	)
	return httpserver.Run(ctx, srv, log)
}
