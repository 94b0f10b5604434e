package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/memorylane/internal/memories/service"
	"github.com/aussiebroadwan/memorylane/pkg/httpx"
	"github.com/aussiebroadwan/memorylane/pkg/memoriessdk"
	"github.com/aussiebroadwan/memorylane/pkg/slogx"
)

type LoginHandler struct {
	LoginService *service.LoginService
	Cookie       httpx.SessionCookie
	ClientKey    httpx.KeyExtractor
}

// ServeHTTP handles password login.
//
//	@Summary		Log in
//	@Description	Exchanges email and password for a session cookie. Stored accounts get a 15 minute session,
//	@Description	demonstration accounts a one hour session. Attempts are limited per client.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		memoriessdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	memoriessdk.LoginResponse	"Session cookie set"
//	@Failure		400		{object}	memoriessdk.ErrorResponse	"Email or password missing"
//	@Failure		401		{object}	memoriessdk.ErrorResponse	"Invalid email or password"
//	@Failure		429		{object}	memoriessdk.ErrorResponse	"Too many attempts; see Retry-After"
//	@Failure		500		{object}	memoriessdk.ErrorResponse	"Internal server error"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	rc, err := httpx.NewRequestContext(w, r, h.ClientKey)
	if errors.Is(err, httpx.ErrBodyTooLarge) {
		errBodyTooLarge.WriteError(w)
		return
	}
	if err != nil {
		log.Warn("failed to read login body", "err", err)
		httpx.ErrAPIBadRequest.WriteError(w)
		return
	}

	// An undecodable body still counts as an attempt; it is treated as
	// missing credentials.
	in, err := service.NewLoginInput(rc)
	if err != nil {
		log.Debug("login body is not valid json", "err", err)
		in = service.LoginInput{ClientKey: rc.ClientKey}
	}

	res, err := h.LoginService.Login(ctx, in)
	if err != nil {
		var limited *service.RateLimitedError
		switch {
		case errors.As(err, &limited):
			httpx.SetRetryAfter(w, limited.RetryAfter)
			errTooManyLogins.WriteError(w)
		case errors.Is(err, service.ErrMissingCredentials):
			errMissingCredentials.WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			errInvalidCredentials.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			errLoginFailed.WriteError(w)
		}
		return
	}

	name := res.Identity.Name
	if name == "" {
		name = res.Identity.Email
	}

	h.Cookie.Write(w, res.Token, res.TTL)
	httpx.WriteJSON(w, http.StatusOK, memoriessdk.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    memoriessdk.LoginUser{Name: name, Role: res.Identity.Role},
	})
}
