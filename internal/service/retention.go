package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// ExpiredDeleter removes comparison records past the retention window.
type ExpiredDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// StartRetentionSweeper periodically hard-deletes expired comparison records.
// Reads already filter expired rows, the sweeper just reclaims storage.
// Returns after starting the background goroutine; it stops when ctx is done.
func StartRetentionSweeper(ctx context.Context, store ExpiredDeleter, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := store.DeleteExpired(ctx)
				if err != nil {
					logger.Error("Retention sweep failed", zap.Error(err))
					continue
				}
				if deleted > 0 {
					logger.Info("Retention sweep removed expired comparisons",
						zap.Int64("deleted", deleted),
					)
				}
			}
		}
	}()
}
