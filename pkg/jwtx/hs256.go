package jwtx

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// HS256Signer signs with a shared HMAC secret.
type HS256Signer struct {
	secret []byte
}

// NewSignerHS256 creates an HS256 signer. An empty secret is ErrNoKey, one
// shorter than MinSecretLength is ErrWeakSecret.
func NewSignerHS256(secret []byte) (*HS256Signer, error) {
	s := &HS256Signer{secret: append([]byte(nil), secret...)}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

func (s *HS256Signer) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *HS256Signer) Validate() error {
	if len(s.secret) == 0 {
		return ErrNoKey
	}
	if len(s.secret) < MinSecretLength {
		return fmt.Errorf("%w: need at least %d bytes, got %d", ErrWeakSecret, MinSecretLength, len(s.secret))
	}
	return nil
}

// Verifier returns a verifier sharing this signer's secret.
func (s *HS256Signer) Verifier(opts VerifyOptions) Verifier {
	return &HS256Verifier{secret: s.secret, opts: opts}
}

// HS256Verifier validates HS256 tokens.
type HS256Verifier struct {
	secret []byte
	opts   VerifyOptions
}

// NewVerifierHS256 creates a verifier for tokens signed with secret.
func NewVerifierHS256(secret []byte, opts VerifyOptions) *HS256Verifier {
	return &HS256Verifier{secret: append([]byte(nil), secret...), opts: opts}
}

func (v *HS256Verifier) Verify(token string) (Claims, error) {
	return verify(token, jwt.SigningMethodHS256.Alg(), v.secret, v.opts)
}
