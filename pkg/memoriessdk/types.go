package memoriessdk

import "time"

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ============================================================================
// Session
// ============================================================================

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginUser is the public profile returned by a successful login.
type LoginUser struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// LoginResponse is returned by POST /api/login. The session itself travels
// in the Set-Cookie header.
type LoginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}

// SessionUser describes the identity behind the current session.
type SessionUser struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Email  string `json:"email"`
}

// StatusResponse is returned by GET /api/auth/status.
type StatusResponse struct {
	Success       bool        `json:"success"`
	Authenticated bool        `json:"authenticated"`
	User          SessionUser `json:"user"`
}

// AdminResponse is returned by GET /admin.
type AdminResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    SessionUser `json:"user"`
}

// ============================================================================
// Memories
// ============================================================================

// MemoryRequest is the body of POST /api/e. Every field is required.
type MemoryRequest struct {
	Date  string `json:"date"`
	Place string `json:"place"`
	Title string `json:"title"`
	Story string `json:"story"`
}

// Memory is a stored memory. UserID is empty for anonymous submissions.
type Memory struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Place     string    `json:"place"`
	Title     string    `json:"title"`
	Story     string    `json:"story"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemoryResponse is returned by POST /api/e.
type MemoryResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Memory `json:"data"`
}

// MemoryListResponse is returned by GET /api/e and GET /api/memories,
// newest first.
type MemoryListResponse struct {
	Success bool     `json:"success"`
	Data    []Memory `json:"data"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz (readyz includes the Checks field).
type HealthResponse struct {
	// Status is "ok" or "degraded".
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	Version string `json:"version,omitempty"`

	// Checks is only set by /readyz.
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each critical dependency as "ok" or "error".
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
