package memoriessdk

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a session cookie, which the client stores.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var out LoginResponse
	req := LoginRequest{Email: email, Password: password}
	if err := c.call(ctx, http.MethodPost, "/api/login", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout asks the server to clear the session cookie.
func (c *SDKClient) Logout(ctx context.Context) error {
	var out MessageResponse
	return c.call(ctx, http.MethodPost, "/api/logout", nil, &out, http.StatusOK)
}

// Status describes the current session. It fails with a 401 *APIError when
// there is none.
func (c *SDKClient) Status(ctx context.Context) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.call(ctx, http.MethodGet, "/api/auth/status", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Admin calls the admin-only greeting.
func (c *SDKClient) Admin(ctx context.Context) (*AdminResponse, error) {
	var out AdminResponse
	if err := c.call(ctx, http.MethodGet, "/admin", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
