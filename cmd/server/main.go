package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/nha-sim-service/internal/config"
	"github.com/preston-bernstein/nha-sim-service/internal/logging"
	"github.com/preston-bernstein/nha-sim-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nha-sim-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting nha-sim-service",
		logging.FieldProvider, cfg.LeagueProvider,
		"port", cfg.Port,
	)
	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
