// Package attempts counts login attempts per client and decides when a client
// has to back off.
package attempts

import (
	"context"
	"errors"
	"time"
)

// Defaults for the login window.
const (
	DefaultWindow      = 15 * time.Minute
	DefaultMaxAttempts = 12
)

var ErrEmptyKey = errors.New("attempts: empty client key")

// Config describes a fixed counting window.
type Config struct {
	Window      time.Duration
	MaxAttempts int
}

func (c Config) withDefaults() Config {
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	return c
}

// Decision is the outcome of recording one attempt.
type Decision struct {
	Allowed bool
	// Count is the number of attempts in the current window, this one included.
	Count int
	// RetryAfter is the time left in the window. Only set when not allowed.
	RetryAfter time.Duration
}

// Limiter records an attempt for key and reports whether it may proceed.
// Every call counts, allowed or not.
type Limiter interface {
	Hit(ctx context.Context, key string) (Decision, error)
}

// decide turns a post-increment count into a Decision.
func decide(cfg Config, count int, remaining time.Duration) Decision {
	if count <= cfg.MaxAttempts {
		return Decision{Allowed: true, Count: count}
	}
	if remaining < time.Second {
		remaining = time.Second
	}
	return Decision{Allowed: false, Count: count, RetryAfter: remaining}
}
