package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole accepts "user" or "admin" in any case. Empty means RoleUser.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return RoleUser, nil
	case RoleUser, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) String() string { return string(r) }
