package http

import (
	"net/http"

	"github.com/aussiebroadwan/memorylane/pkg/httpx"
	"github.com/aussiebroadwan/memorylane/pkg/jwtx"
	"github.com/aussiebroadwan/memorylane/pkg/memoriessdk"
)

func sessionUser(id jwtx.Identity) memoriessdk.SessionUser {
	return memoriessdk.SessionUser{
		UserID: id.SubjectID,
		Role:   id.Role,
		Email:  id.Email,
	}
}

// StatusHandler godoc
//
//	@Summary		Session status
//	@Description	Describes the identity behind the session cookie
//	@Tags			Session
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	memoriessdk.StatusResponse	"Authenticated"
//	@Failure		401	{object}	memoriessdk.ErrorResponse	"Not authenticated"
//	@Router			/api/auth/status [get].
func StatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		httpx.ErrAPIUnauthenticated.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, memoriessdk.StatusResponse{
		Success:       true,
		Authenticated: true,
		User:          sessionUser(id),
	})
}

// AdminHandler godoc
//
//	@Summary	Admin greeting
//	@Tags		Admin
//	@Security	CookieAuth
//	@Produce	json
//	@Success	200	{object}	memoriessdk.AdminResponse	"Caller is an admin"
//	@Failure	401	{object}	memoriessdk.ErrorResponse	"Not authenticated"
//	@Failure	403	{object}	memoriessdk.ErrorResponse	"Access denied"
//	@Router		/admin [get].
func AdminHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		httpx.ErrAPIUnauthenticated.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, memoriessdk.AdminResponse{
		Success: true,
		Message: "Welcome admin!",
		User:    sessionUser(id),
	})
}
