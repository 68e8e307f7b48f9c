package main

import (
	"context"
	"log"

	"mediavault/internal/config"
	"mediavault/internal/port"
	"mediavault/internal/task"
)

// Enqueues a sweep of stored objects no database row references anymore.
// Meant to run from cron; the worker does the actual deletion.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌  Configuration error: %v", err)
	}

	dispatcher := initDispatcher(cfg)

	if err := dispatcher.EnqueueSweepOrphans(context.Background()); err != nil {
		log.Fatalf("❌  Failed to enqueue orphan sweep: %v", err)
	}
	log.Println("✅  Orphan sweep enqueued")
}

func initDispatcher(cfg *config.Settings) port.TaskDispatcher {
	if cfg.RedisAddr == "" {
		log.Fatalf("❌  Redis not configured: this command requires a running Redis instance")
	}
	return task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
}
