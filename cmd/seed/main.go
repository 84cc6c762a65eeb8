package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jwebster45206/loottable/internal/catalog"
	"github.com/jwebster45206/loottable/internal/config"
	"github.com/jwebster45206/loottable/internal/logger"
	"github.com/jwebster45206/loottable/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting loot table seed",
		"environment", cfg.Environment,
		"redis_url", cfg.RedisURL,
		"key_prefix", cfg.RedisKeyPrefix,
		"ttl", cfg.TableTTL)

	// Nothing is written unless the whole catalogue builds.
	tables, err := catalog.All()
	if err != nil {
		log.Error("Failed to build catalogue", "error", err)
		os.Exit(1)
	}
	log.Info("Catalogue built", "tables", len(tables))

	store, err := storage.NewRedisStorage(cfg.RedisURL, cfg.RedisKeyPrefix, cfg.TableTTL, log)
	if err != nil {
		log.Error("Failed to create storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Error closing storage", "error", err)
		}
	}()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer waitCancel()
	if err := store.WaitForConnection(waitCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}
	log.Info("Storage service initialized successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	failed := 0
	for _, id := range catalog.IDs() {
		saved, err := store.SaveTable(ctx, id, tables[id])
		if err != nil {
			logger.WithError(log, err).Error("Failed to save table", "id", id.String())
			failed++
			continue
		}
		log.Info("Saved table", "id", id.String(), "revision", saved.Revision.String())
	}

	if failed > 0 {
		log.Error("Seed finished with errors", "failed", failed)
		os.Exit(1)
	}
	log.Info("Seed complete", "tables", len(tables))
}
