package workers

import (
	"context"
	"log/slog"
	"time"

	"framed-chat/repositories"
	"framed-chat/runtime"
)

// RetentionWorker periodically drops aged-out history and idle room
// sessions. Purge failures are logged and never stop the next scheduled run.
type RetentionWorker struct {
	log      *slog.Logger
	store    repositories.IMessageStore
	registry *runtime.Registry
	interval time.Duration
	maxAge   time.Duration
	idleTTL  time.Duration
}

func NewRetentionWorker(
	log *slog.Logger,
	store repositories.IMessageStore,
	registry *runtime.Registry,
	interval, maxAge, idleTTL time.Duration,
) *RetentionWorker {
	return &RetentionWorker{
		log:      log,
		store:    store,
		registry: registry,
		interval: interval,
		maxAge:   maxAge,
		idleTTL:  idleTTL,
	}
}

func (w *RetentionWorker) Run(ctx context.Context) error {
	w.log.Info("Starting retention worker", "interval", w.interval, "max_age", w.maxAge)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *RetentionWorker) sweep(ctx context.Context) {
	w.log.Info("Running scheduled cleanup")
	purged, err := w.store.PurgeOlderThan(ctx, w.maxAge)
	if err != nil {
		w.log.Error("History purge failed", "error", err)
	} else {
		w.log.Info("Old messages deleted", "count", purged)
	}

	evicted := w.registry.EvictIdle(w.idleTTL)
	if evicted > 0 {
		w.log.Info("Idle room sessions evicted", "count", evicted)
	}
}
