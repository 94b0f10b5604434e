package memoriessdk

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string

	// RetryAfter is parsed from the Retry-After header of 429 answers.
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	return fmt.Sprintf("memorylane: %d %s", e.StatusCode, e.Message)
}

// IsUnauthenticated reports whether the session is missing or no longer valid.
func (e *APIError) IsUnauthenticated() bool { return e.StatusCode == http.StatusUnauthorized }

// IsForbidden reports whether the session lacks the required role.
func (e *APIError) IsForbidden() bool { return e.StatusCode == http.StatusForbidden }

// IsRateLimited reports whether the request was throttled.
func (e *APIError) IsRateLimited() bool { return e.StatusCode == http.StatusTooManyRequests }

func parseRetryAfter(h string) time.Duration {
	secs, err := strconv.Atoi(h)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
