package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a session token and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions captures the expectations shared by all verifiers.
type VerifyOptions struct {
	// Issuer the token must carry. Empty means "don't care".
	Issuer string

	// Now overrides the clock used for expiry checks.
	Now func() time.Time
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrBadSignature = errors.New("jwtx: bad signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
)

// verify parses token with exactly one accepted algorithm and key, and folds
// the library's error zoo into the package sentinels. A token is valid until
// exp with no leeway. iat is informational: replicas whose clocks trail the
// issuer must still accept a fresh token.
func verify(token string, alg string, key any, opts VerifyOptions) (Claims, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{alg}),
		jwt.WithExpirationRequired(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Now != nil {
		parserOpts = append(parserOpts, jwt.WithTimeFunc(opts.Now))
	}

	var claims Claims
	_, err := jwt.NewParser(parserOpts...).ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return key, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	default:
		return ErrMalformed
	}
}
