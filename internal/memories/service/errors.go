package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrMissingCredentials = errors.New("missing_credentials")
	ErrRateLimited        = errors.New("rate_limited")
	ErrInvalidUser        = errors.New("invalid_user")
)

// RateLimitedError is returned when the login limiter refuses an attempt.
// It matches ErrRateLimited with errors.Is.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate_limited: retry after %s", e.RetryAfter)
}

func (e *RateLimitedError) Is(target error) bool { return target == ErrRateLimited }
