package jwtx

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownTrust = errors.New("jwtx: unknown trust level")

// Issuer is the only thing in the service that mints session tokens.
type Issuer struct {
	Signer      Signer
	Issuer      string
	PrimaryTTL  time.Duration
	FallbackTTL time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// TTL returns the lifetime for tokens of the given trust level.
func (i *Issuer) TTL(trust Trust) (time.Duration, error) {
	switch trust {
	case TrustVerified:
		return orDefault(i.PrimaryTTL, DefaultPrimaryTTL), nil
	case TrustBasic:
		return orDefault(i.FallbackTTL, DefaultFallbackTTL), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTrust, trust)
	}
}

// Issue signs a token for id. The lifetime follows id.Trust.
func (i *Issuer) Issue(id Identity) (string, Claims, error) {
	ttl, err := i.TTL(id.Trust)
	if err != nil {
		return "", Claims{}, err
	}

	now := time.Now
	if i.Now != nil {
		now = i.Now
	}

	claims := NewSessionClaims(id, i.Issuer, ttl, now().UTC())
	token, err := i.Signer.Sign(claims)
	if err != nil {
		return "", Claims{}, fmt.Errorf("jwtx: sign: %w", err)
	}
	return token, claims, nil
}

func orDefault(d, def time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return def
}
