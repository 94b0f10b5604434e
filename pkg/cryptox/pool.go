package cryptox

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"
)

// VerifyPool bounds how many password verifications run at once so a burst
// of logins cannot starve the rest of the process of CPU.
type VerifyPool struct {
	sem *semaphore.Weighted

	// OnVerify, when set, receives the duration of each completed verification.
	OnVerify func(time.Duration)
}

// NewVerifyPool creates a pool with size slots, or GOMAXPROCS slots when size <= 0.
func NewVerifyPool(size int) *VerifyPool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	return &VerifyPool{sem: semaphore.NewWeighted(int64(size))}
}

// Verify waits for a free slot and then runs VerifyPassword. Cancelling ctx
// aborts the wait only; a verification that has started runs to completion.
func (p *VerifyPool) Verify(ctx context.Context, password, encoded string) (bool, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer p.sem.Release(1)

	start := time.Now()
	ok, err := VerifyPassword(password, encoded)
	if p.OnVerify != nil {
		p.OnVerify(time.Since(start))
	}
	return ok, err
}
