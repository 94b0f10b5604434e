package http

import (
	"net/http"

	"github.com/aussiebroadwan/memorylane/pkg/httpx"
	"github.com/aussiebroadwan/memorylane/pkg/memoriessdk"
)

type LogoutHandler struct {
	Cookie httpx.SessionCookie
}

// ServeHTTP clears the session cookie. Tokens are stateless, so a copy kept
// elsewhere stays valid until it expires.
//
//	@Summary	Log out
//	@Tags		Session
//	@Produce	json
//	@Success	200	{object}	memoriessdk.MessageResponse	"Cookie cleared"
//	@Router		/api/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.Cookie.Clear(w)
	httpx.WriteJSON(w, http.StatusOK, memoriessdk.MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}
