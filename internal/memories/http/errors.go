package http

import (
	"net/http"

	"github.com/aussiebroadwan/memorylane/pkg/httpx"
)

var (
	errMissingCredentials = &httpx.APIError{StatusCode: http.StatusBadRequest, Message: "Email and password are required"}
	errInvalidCredentials = &httpx.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"}
	errTooManyLogins      = &httpx.APIError{StatusCode: http.StatusTooManyRequests, Message: "Too many login attempts, please try again later"}
	errLoginFailed        = &httpx.APIError{StatusCode: http.StatusInternalServerError, Message: "Server error during login"}

	errMemoryIncomplete = &httpx.APIError{StatusCode: http.StatusBadRequest, Message: "All fields are required"}
	errSaveMemory       = &httpx.APIError{StatusCode: http.StatusInternalServerError, Message: "Failed to save memory"}
	errFetchMemories    = &httpx.APIError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch memories"}

	errBodyTooLarge = &httpx.APIError{StatusCode: http.StatusRequestEntityTooLarge, Message: "Request body too large"}
)
