package service

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/aussiebroadwan/memorylane/internal/memories/domain"
)

// FallbackAccount is an entry of the demonstration allow-list consulted when
// an email is unknown to the credential store.
type FallbackAccount struct {
	Email    string
	Password string
	Name     string
	Role     domain.Role
}

// DefaultFallbackAccounts returns the built-in demonstration accounts.
func DefaultFallbackAccounts() []FallbackAccount {
	return []FallbackAccount{
		{Email: "admin@test.com", Password: "AdminSecure2025!", Name: "Admin User", Role: domain.RoleAdmin},
		{Email: "user@test.com", Password: "UserSecure2025!", Name: "Regular User", Role: domain.RoleUser},
		{Email: "demo@test.com", Password: "DemoSecure2025!", Name: "Demo User", Role: domain.RoleUser},
	}
}

// matchFallback compares against every entry without returning early.
// Digests keep the comparison length-independent.
func matchFallback(accounts []FallbackAccount, email, password string) (FallbackAccount, bool) {
	emailSum := sha256.Sum256([]byte(email))
	passSum := sha256.Sum256([]byte(password))

	var (
		found FallbackAccount
		ok    bool
	)
	for _, acc := range accounts {
		accEmail := sha256.Sum256([]byte(domain.NormalizeUsername(acc.Email)))
		accPass := sha256.Sum256([]byte(acc.Password))

		match := subtle.ConstantTimeCompare(emailSum[:], accEmail[:]) &
			subtle.ConstantTimeCompare(passSum[:], accPass[:])
		if match == 1 && !ok {
			found, ok = acc, true
		}
	}
	return found, ok
}
