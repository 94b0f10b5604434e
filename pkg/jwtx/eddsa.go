package jwtx

import (
	"crypto/ed25519"
	"errors"

	"github.com/aussiebroadwan/memorylane/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
)

// EdDSASigner signs with an Ed25519 private key.
type EdDSASigner struct {
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewSignerEdDSA loads an Ed25519 key from PKCS8 PEM bytes.
func NewSignerEdDSA(pemKey []byte) (*EdDSASigner, error) {
	key, err := cryptox.ParseEd25519PrivateKey(pemKey)
	if err != nil {
		return nil, err
	}

	s := &EdDSASigner{key: key, pub: key.Public().(ed25519.PublicKey)}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *EdDSASigner) Alg() string { return jwt.SigningMethodEdDSA.Alg() }

func (s *EdDSASigner) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(s.key)
}

func (s *EdDSASigner) Validate() error {
	if len(s.key) != ed25519.PrivateKeySize {
		return errors.New("jwtx: invalid Ed25519 private key size")
	}
	if len(s.pub) != ed25519.PublicKeySize {
		return errors.New("jwtx: invalid Ed25519 public key size")
	}
	return nil
}

// Verifier returns a verifier bound to this signer's public key.
func (s *EdDSASigner) Verifier(opts VerifyOptions) Verifier {
	return NewVerifierEdDSA(s.pub, opts)
}

// EdDSAVerifier validates EdDSA tokens against a single public key.
type EdDSAVerifier struct {
	pub  ed25519.PublicKey
	opts VerifyOptions
}

func NewVerifierEdDSA(pub ed25519.PublicKey, opts VerifyOptions) *EdDSAVerifier {
	return &EdDSAVerifier{pub: pub, opts: opts}
}

func (v *EdDSAVerifier) Verify(token string) (Claims, error) {
	return verify(token, jwt.SigningMethodEdDSA.Alg(), v.pub, v.opts)
}
