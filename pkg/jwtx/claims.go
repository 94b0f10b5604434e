package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session token lifetimes. The two classes reflect different trust levels and
// must stay separate: a fallback login never gets a primary-length session
// or the other way round.
const (
	// DefaultPrimaryTTL applies to identities verified against the credential store.
	DefaultPrimaryTTL = 15 * time.Minute

	// DefaultFallbackTTL applies to the demonstration allow-list.
	DefaultFallbackTTL = time.Hour
)

// Trust marks how an identity was authenticated.
type Trust string

const (
	// TrustVerified: password checked against a stored hash.
	TrustVerified Trust = "verified"

	// TrustBasic: matched the fixed demonstration allow-list.
	TrustBasic Trust = "basic"
)

// Identity is what a verified session token tells the rest of the service.
type Identity struct {
	SubjectID string
	Role      string
	Email     string
	Name      string
	Trust     Trust
}

// Claims are the session token claims.
type Claims struct {
	jwt.RegisteredClaims

	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Trust Trust  `json:"trust"`
}

// NewSessionClaims builds claims for id valid until now+ttl. No nbf is
// emitted, so a verifier with a slower clock accepts the token at once.
func NewSessionClaims(id Identity, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.SubjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Role:  id.Role,
		Email: id.Email,
		Name:  id.Name,
		Trust: id.Trust,
	}
}

// Identity returns the identity carried by the claims.
func (c Claims) Identity() Identity {
	return Identity{
		SubjectID: c.Subject,
		Role:      c.Role,
		Email:     c.Email,
		Name:      c.Name,
		Trust:     c.Trust,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
