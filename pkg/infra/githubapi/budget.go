package githubapi

import (
	"context"
	"sync"
	"time"
)

// Budget is a token bucket shared by every client attempt. The code host's
// quota is an account-level resource, so one bucket arbitrates all
// concurrently running jobs in the process.
type Budget struct {
	mu       sync.Mutex
	capacity float64
	refill   float64 // tokens per second
	tokens   float64
	last     time.Time

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewBudget constructs a bucket with the provided capacity/refill.
func NewBudget(capacity int, refillPerSecond float64) *Budget {
	b := &Budget{
		capacity: float64(capacity),
		refill:   refillPerSecond,
		tokens:   float64(capacity),
		now:      time.Now,
		sleep: func(ctx context.Context, d time.Duration) error {
			t := time.NewTimer(d)
			defer t.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
				return nil
			}
		},
	}
	b.last = b.now()
	return b
}

// Allow consumes a single token if available. Returns allowed flag and
// current token count.
func (b *Budget) Allow() (bool, float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refillLocked()

	if b.tokens >= 1 {
		b.tokens--
		return true, b.tokens
	}
	return false, b.tokens
}

// Wait blocks until a token is consumed or the context is cancelled.
func (b *Budget) Wait(ctx context.Context) error {
	for {
		allowed, tokens := b.Allow()
		if allowed {
			return nil
		}

		wait := time.Duration((1 - tokens) / b.refill * float64(time.Second))
		if err := b.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func (b *Budget) refillLocked() {
	now := b.now()
	delta := now.Sub(b.last).Seconds()
	if delta > 0 {
		b.tokens += delta * b.refill
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
	}
	b.last = now
}
