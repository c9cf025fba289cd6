package session

import (
	"context"
	"time"

	"github.com/dmitrymomot/mongosession/pkg/logger"
)

// RunCleanup purges expired sessions every interval until ctx is done.
// It blocks; run it in its own goroutine. A failed purge is logged and
// retried on the next tick.
func RunCleanup(ctx context.Context, s *Store, interval time.Duration) error {
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.PurgeExpired(ctx); err != nil {
				s.logger.WarnContext(ctx, "failed to purge expired sessions", logger.Error(err))
			}
		}
	}
}
