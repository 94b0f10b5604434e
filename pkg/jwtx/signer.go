package jwtx

import "errors"

// MinSecretLength is the shortest HS256 secret accepted, in bytes.
const MinSecretLength = 32

var (
	ErrNoKey      = errors.New("jwtx: no signing key configured")
	ErrWeakSecret = errors.New("jwtx: signing secret too short")
)

// Signer is anything that can sign session claims.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Validate() error
}

// KeyPair is a Signer that can also hand out the matching Verifier.
type KeyPair interface {
	Signer
	Verifier(opts VerifyOptions) Verifier
}
