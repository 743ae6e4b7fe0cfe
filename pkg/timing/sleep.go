package timing

import (
	"context"
	"time"
)

// Sleep blocks for d. It cannot be cancelled.
func Sleep(d time.Duration) {
	time.Sleep(d)
}

// SleepContext blocks for d or until ctx is done, returning ctx.Err() in the latter case.
func SleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
