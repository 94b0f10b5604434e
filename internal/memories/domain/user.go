package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string
	Username     string // lower-cased, trimmed, unique
	Name         string
	Email        string
	PasswordHash string // argon2id or legacy bcrypt, never serialised
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// NormalizeUsername is the canonical form usernames are stored and looked up in.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
