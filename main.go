package main

import (
	"context"
	"log"

	"rewards-server/internal/bootstrap"
	"rewards-server/internal/config"
	"rewards-server/internal/observability"
	"rewards-server/internal/server"
)

func main() {
	logger := observability.NewLogger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	if err := deps.InitializeRateLimit(ctx); err != nil {
		deps.Cleanup()
		log.Fatalf("failed to initialize rate limiting: %v", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
}
