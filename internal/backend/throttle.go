package backend

import (
	"context"
	"time"
)

// throttle spaces successive reloads at least interval apart, so a file that
// is written in several steps is read once it settles. It is used from a
// single poller goroutine.
type throttle struct {
	interval time.Duration
	last     time.Time
}

func newThrottle(interval time.Duration) *throttle {
	return &throttle{interval: max(interval, 0)}
}

// wait blocks until the interval since the previous call has passed. It
// reports false when ctx ends first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil {
		return ctx.Err() == nil
	}
	if !t.last.IsZero() {
		if d := t.interval - time.Since(t.last); d > 0 {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return false
			case <-timer.C:
			}
		}
	}
	if ctx.Err() != nil {
		return false
	}
	t.last = time.Now()
	return true
}
