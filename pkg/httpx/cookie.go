package httpx

import (
	"net/http"
	"time"
)

// DefaultSessionCookieName is the cookie carrying the session token.
const DefaultSessionCookieName = "token"

// SessionCookie writes, reads and clears the session cookie. The cookie is
// always HttpOnly and SameSite=Strict; Secure is set in production.
type SessionCookie struct {
	Name   string
	Secure bool

	// Now defaults to time.Now. Used for the Expires attribute.
	Now func() time.Time
}

func (c SessionCookie) name() string {
	if c.Name == "" {
		return DefaultSessionCookieName
	}
	return c.Name
}

func (c SessionCookie) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c SessionCookie) base() *http.Cookie {
	return &http.Cookie{
		Name:     c.name(),
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// Write attaches token with a lifetime of ttl.
func (c SessionCookie) Write(w http.ResponseWriter, token string, ttl time.Duration) {
	ck := c.base()
	ck.Value = token
	ck.MaxAge = int(ttl / time.Second)
	ck.Expires = c.now().Add(ttl).UTC()
	http.SetCookie(w, ck)
}

// Clear instructs the client to drop the cookie immediately. The token itself
// stays valid until it expires.
func (c SessionCookie) Clear(w http.ResponseWriter) {
	ck := c.base()
	ck.MaxAge = -1
	ck.Expires = time.Unix(0, 0).UTC()
	http.SetCookie(w, ck)
}

// Read returns the session token from a parsed cookie map. An absent or empty
// cookie is reported as ok=false.
func (c SessionCookie) Read(cookies map[string]string) (string, bool) {
	v, ok := cookies[c.name()]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
