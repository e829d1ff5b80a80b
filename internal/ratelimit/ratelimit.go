package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Throttle paces outgoing requests.
type Throttle interface {
	// Wait blocks until the next request may be issued or the context is done.
	Wait(ctx context.Context) error

	// Remaining returns the number of requests left in the current window.
	Remaining() int
}

// WindowThrottle allows at most limit requests per window and blocks callers
// until the window resets once the budget is spent.
type WindowThrottle struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	count  int
	reset  time.Time
}

// NewWindowThrottle creates a throttle of limit requests per window.
func NewWindowThrottle(limit int, window time.Duration) *WindowThrottle {
	return &WindowThrottle{limit: limit, window: window}
}

func (t *WindowThrottle) Wait(ctx context.Context) error {
	for {
		t.mu.Lock()
		now := time.Now()
		if now.After(t.reset) {
			t.count = 0
			t.reset = now.Add(t.window)
		}
		if t.count < t.limit {
			t.count++
			t.mu.Unlock()
			return nil
		}
		wait := t.reset.Sub(now)
		t.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (t *WindowThrottle) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if time.Now().After(t.reset) {
		return t.limit
	}
	remaining := t.limit - t.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Ensure WindowThrottle implements Throttle
var _ Throttle = (*WindowThrottle)(nil)
