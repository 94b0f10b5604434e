package httpx

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/memorylane/pkg/jwtx"
)

var (
	ErrUnauthenticated = errors.New("httpx: not authenticated")
	ErrForbidden       = errors.New("httpx: access denied")
)

// Rejection reasons passed to Gate.OnReject.
const (
	RejectNoSession = "no_session"
	RejectInvalid   = "invalid_token"
	RejectExpired   = "expired"
	RejectRole      = "role"
)

// Gate derives the caller identity from the session cookie and enforces roles.
type Gate struct {
	Cookie   SessionCookie
	Verifier jwtx.Verifier

	// OnReject, when set, is called with one of the Reject* reasons.
	OnReject func(reason string)
}

func (g *Gate) reject(reason string) {
	if g.OnReject != nil {
		g.OnReject(reason)
	}
}

// RequireSession returns the identity carried by a valid session cookie.
// Every failure wraps ErrUnauthenticated; the verifier error is wrapped too
// so callers can log it.
func (g *Gate) RequireSession(rc RequestContext) (jwtx.Identity, error) {
	token, ok := g.Cookie.Read(rc.Cookies)
	if !ok {
		g.reject(RejectNoSession)
		return jwtx.Identity{}, ErrUnauthenticated
	}

	claims, err := g.Verifier.Verify(token)
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			g.reject(RejectExpired)
		} else {
			g.reject(RejectInvalid)
		}
		return jwtx.Identity{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	return claims.Identity(), nil
}

// RequireRole is RequireSession plus a role check, which fails with ErrForbidden.
func (g *Gate) RequireRole(rc RequestContext, role string) (jwtx.Identity, error) {
	id, err := g.RequireSession(rc)
	if err != nil {
		return jwtx.Identity{}, err
	}
	if err := g.checkRole(id, role); err != nil {
		return jwtx.Identity{}, err
	}
	return id, nil
}

func (g *Gate) checkRole(id jwtx.Identity, role string) error {
	if id.Role != role {
		g.reject(RejectRole)
		return fmt.Errorf("%w: role %q required", ErrForbidden, role)
	}
	return nil
}
