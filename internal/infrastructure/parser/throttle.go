package parser

import (
	"context"
	"sync"
	"time"
)

// Throttle enforces a minimum interval between requests to the same host.
// The interval is a hard invariant: Wait blocks until the interval since
// the previous request to that host has fully elapsed. Distinct hosts are
// tracked independently.
type Throttle struct {
	interval time.Duration

	mu   sync.Mutex
	last map[string]time.Time
}

// NewThrottle builds a throttle with the given politeness interval.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{
		interval: interval,
		last:     map[string]time.Time{},
	}
}

// Wait blocks until a request to host is allowed, then records the slot.
// Returns early only when the context is canceled.
func (t *Throttle) Wait(ctx context.Context, host string) error {
	if t == nil || t.interval <= 0 {
		return nil
	}

	t.mu.Lock()
	now := time.Now()
	next := t.last[host].Add(t.interval)
	wait := next.Sub(now)
	if wait < 0 {
		wait = 0
	}
	t.last[host] = now.Add(wait)
	t.mu.Unlock()

	if wait == 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
