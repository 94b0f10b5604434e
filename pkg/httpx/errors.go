package httpx

import (
	"net/http"
)

// APIError is the error shape every endpoint answers with:
// {"success": false, "message": "..."}.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// WriteError writes e as the response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	WriteJSON(w, e.StatusCode, map[string]any{
		"success": false,
		"message": e.Message,
	})
}

var (
	ErrAPIBadRequest      = &APIError{StatusCode: http.StatusBadRequest, Message: "Invalid request body"}
	ErrAPIUnauthenticated = &APIError{StatusCode: http.StatusUnauthorized, Message: "Not authenticated"}
	ErrAPIForbidden       = &APIError{StatusCode: http.StatusForbidden, Message: "Access denied"}
	ErrAPINotFound        = &APIError{StatusCode: http.StatusNotFound, Message: "Route not found"}
	ErrAPITooManyRequests = &APIError{StatusCode: http.StatusTooManyRequests, Message: "Too many requests, please try again later"}
	ErrAPIInternal        = &APIError{StatusCode: http.StatusInternalServerError, Message: "Internal server error"}
)

// NotFoundHandler answers unknown routes.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		ErrAPINotFound.WriteError(w)
	})
}
