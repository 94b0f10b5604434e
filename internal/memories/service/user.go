package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/memorylane/internal/memories/domain"
	"github.com/aussiebroadwan/memorylane/internal/memories/store"
	"github.com/aussiebroadwan/memorylane/pkg/cryptox"
	"github.com/aussiebroadwan/memorylane/pkg/idx"
	"github.com/aussiebroadwan/memorylane/pkg/slogx"
)

// minPasswordLength applies to provisioned accounts only.
const minPasswordLength = 8

type UserService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
}

type CreateUserInput struct {
	Username string
	Name     string
	Email    string
	Password string
	Role     string
	Inactive bool
}

// CreateUser provisions an account. The username is normalised and the
// password hashed with the configured scheme.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	username := domain.NormalizeUsername(in.Username)
	if username == "" {
		return domain.User{}, fmt.Errorf("%w: username is required", ErrInvalidUser)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.User{}, fmt.Errorf("%w: name is required", ErrInvalidUser)
	}
	if len(in.Password) < minPasswordLength {
		return domain.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidUser, minPasswordLength)
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %w", ErrInvalidUser, err)
	}

	email := domain.NormalizeUsername(in.Email)
	if email == "" && strings.Contains(username, "@") {
		email = username
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     !in.Inactive,
		CreatedAt:    now.Truncate(time.Millisecond),
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		return domain.User{}, err
	}

	l.Info("user created", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
