// Package main seeds the configured persistence driver with the
// celebrity dataset and optionally builds every snapshot, so a fresh
// environment serves real answers from the first request.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"accessengine-backend/application/commands"
	"accessengine-backend/infrastructure/config"
	"accessengine-backend/infrastructure/di"
)

func main() {
	rebuild := flag.Bool("rebuild", true, "rebuild all snapshots after seeding")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall run timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	logger := container.Logger

	result, err := container.Seeder.Load(ctx)
	if err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
	logger.Info("Dataset seeded",
		zap.String("driver", cfg.PersistenceDriver),
		zap.Int("celebrities", result.Celebrities),
		zap.Int("members", result.Members),
		zap.Int("edges", result.Edges),
	)

	if *rebuild {
		if _, err := container.CommandBus.Send(ctx, commands.RebuildAllCommand{Reason: "seed"}); err != nil {
			logger.Fatal("Snapshot rebuild failed", zap.Error(err))
		}
		logger.Info("All snapshots built")
	}

	if err := container.Shutdown(); err != nil {
		log.Printf("Container shutdown error: %v", err)
	}
}
