package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Scheme names a password hashing algorithm.
type Scheme string

const (
	// SchemeArgon2id is used for every newly provisioned password.
	SchemeArgon2id Scheme = "argon2id"

	// SchemeBcrypt exists for hashes produced by the older provisioning
	// tooling. Verification of `$2a$`/`$2b$`/`$2y$` hashes always works, the
	// scheme only matters when hashing.
	SchemeBcrypt Scheme = "bcrypt"
)

// Work factor bounds. For argon2id the work factor is the iteration count,
// for bcrypt it is the cost.
const (
	DefaultArgon2Iterations = 2
	MaxArgon2Iterations     = 10
	DefaultBcryptCost       = 12
)

// Fixed Argon2id parameters.
const (
	argon2Memory      = 19 * 1024 // KiB
	argon2Parallelism = 1
	argon2KeyLength   = 32
	saltLength        = 16

	// Upper bounds accepted when parsing stored hashes.
	maxStoredMemory     = 1 << 20
	maxStoredIterations = 64
)

var (
	ErrMalformedHash = errors.New("cryptox: malformed password hash")
	ErrWorkFactor    = errors.New("cryptox: work factor out of range")
	ErrUnknownScheme = errors.New("cryptox: unknown password scheme")
)

// PasswordHasher hashes with a fixed scheme and work factor.
type PasswordHasher struct {
	scheme     Scheme
	workFactor int
}

// NewPasswordHasher validates scheme and workFactor. A zero work factor
// selects the scheme default.
func NewPasswordHasher(scheme Scheme, workFactor int) (*PasswordHasher, error) {
	if scheme == "" {
		scheme = SchemeArgon2id
	}

	wf, err := normalizeWorkFactor(scheme, workFactor)
	if err != nil {
		return nil, err
	}

	return &PasswordHasher{scheme: scheme, workFactor: wf}, nil
}

func (h *PasswordHasher) Scheme() Scheme  { return h.scheme }
func (h *PasswordHasher) WorkFactor() int { return h.workFactor }

// Hash returns an encoded hash with a fresh random salt.
func (h *PasswordHasher) Hash(password string) (string, error) {
	return HashPassword(password, h.scheme, h.workFactor)
}

func normalizeWorkFactor(scheme Scheme, workFactor int) (int, error) {
	switch scheme {
	case SchemeArgon2id:
		if workFactor == 0 {
			return DefaultArgon2Iterations, nil
		}
		if workFactor < 1 || workFactor > MaxArgon2Iterations {
			return 0, fmt.Errorf("%w: argon2id iterations must be 1..%d, got %d",
				ErrWorkFactor, MaxArgon2Iterations, workFactor)
		}
	case SchemeBcrypt:
		if workFactor == 0 {
			return DefaultBcryptCost, nil
		}
		if workFactor < bcrypt.MinCost || workFactor > bcrypt.MaxCost {
			return 0, fmt.Errorf("%w: bcrypt cost must be %d..%d, got %d",
				ErrWorkFactor, bcrypt.MinCost, bcrypt.MaxCost, workFactor)
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
	return workFactor, nil
}

// HashPassword hashes password with the given scheme and work factor.
// Argon2id output is PHC formatted: $argon2id$v=19$m=X,t=Y,p=Z$salt$hash.
func HashPassword(password string, scheme Scheme, workFactor int) (string, error) {
	wf, err := normalizeWorkFactor(scheme, workFactor)
	if err != nil {
		return "", err
	}

	if scheme == SchemeBcrypt {
		out, err := bcrypt.GenerateFromPassword([]byte(password), wf)
		if err != nil {
			return "", fmt.Errorf("cryptox: bcrypt: %w", err)
		}
		return string(out), nil
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	// #nosec G115 - wf is bounded by MaxArgon2Iterations
	hash := argon2.IDKey([]byte(password), salt, uint32(wf), argon2Memory, argon2Parallelism, argon2KeyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory,
		wf,
		argon2Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword reports whether password matches encoded. A mismatch is
// (false, nil); ErrMalformedHash is returned only when encoded is not a
// recognised hash encoding.
func VerifyPassword(password, encoded string) (bool, error) {
	switch {
	case strings.HasPrefix(encoded, "$argon2id$"):
		return verifyArgon2id(password, encoded)
	case strings.HasPrefix(encoded, "$2a$"),
		strings.HasPrefix(encoded, "$2b$"),
		strings.HasPrefix(encoded, "$2y$"):
		return verifyBcrypt(password, encoded)
	default:
		return false, ErrMalformedHash
	}
}

func verifyArgon2id(password, encoded string) (bool, error) {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("%w: expected 6 parts", ErrMalformedHash)
	}
	if parts[2] != fmt.Sprintf("v=%d", argon2.Version) {
		return false, fmt.Errorf("%w: unsupported version", ErrMalformedHash)
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return false, fmt.Errorf("%w: parameters: %v", ErrMalformedHash, err)
	}
	if mem == 0 || mem > maxStoredMemory || iters == 0 || iters > maxStoredIterations || par == 0 {
		return false, fmt.Errorf("%w: parameters out of range", ErrMalformedHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return false, fmt.Errorf("%w: salt", ErrMalformedHash)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 {
		return false, fmt.Errorf("%w: digest", ErrMalformedHash)
	}

	// #nosec G115 - digest length comes from our own encoder
	computed := argon2.IDKey([]byte(password), salt, iters, mem, par, uint32(len(expected)))

	return subtle.ConstantTimeCompare(computed, expected) == 1, nil
}

func verifyBcrypt(password, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}

// GeneratePassword returns a random 16 character alphanumeric password.
func GeneratePassword() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 16
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random password: %w", err)
		}
		password[i] = charset[n.Int64()]
	}
	return string(password), nil
}
