package attempts

import (
	"context"
	"sync"
	"time"
)

type record struct {
	count int
	start time.Time
}

// MemoryLimiter keeps counters in process. Records whose window has elapsed
// are dropped by Sweep.
type MemoryLimiter struct {
	cfg Config
	now func() time.Time

	mu        sync.Mutex
	records   map[string]*record
	lastSweep time.Time
}

// MemoryOption configures a MemoryLimiter.
type MemoryOption func(*MemoryLimiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryOption {
	return func(l *MemoryLimiter) { l.now = now }
}

func NewMemoryLimiter(cfg Config, opts ...MemoryOption) *MemoryLimiter {
	l := &MemoryLimiter{
		cfg:     cfg.withDefaults(),
		now:     time.Now,
		records: make(map[string]*record),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.now()
	return l
}

func (l *MemoryLimiter) Hit(_ context.Context, key string) (Decision, error) {
	if key == "" {
		return Decision{}, ErrEmptyKey
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Opportunistic sweep, at most once per window.
	if now.Sub(l.lastSweep) >= l.cfg.Window {
		l.sweepLocked(now)
	}

	rec, ok := l.records[key]
	if !ok || now.Sub(rec.start) >= l.cfg.Window {
		rec = &record{start: now}
		l.records[key] = rec
	}
	rec.count++

	return decide(l.cfg, rec.count, rec.start.Add(l.cfg.Window).Sub(now)), nil
}

// Sweep drops records whose window has elapsed and returns how many it removed.
func (l *MemoryLimiter) Sweep(context.Context) int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sweepLocked(now)
}

func (l *MemoryLimiter) sweepLocked(now time.Time) int {
	removed := 0
	for key, rec := range l.records {
		if now.Sub(rec.start) >= l.cfg.Window {
			delete(l.records, key)
			removed++
		}
	}
	l.lastSweep = now
	return removed
}

// Len reports how many clients are currently tracked.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
