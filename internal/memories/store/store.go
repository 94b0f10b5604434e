package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/memorylane/internal/memories/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// mongo drivers.
type Store interface {
	Users() Users
	Memories() Memories

	// ApplyMigrations brings the schema (or indexes) up to date.
	ApplyMigrations(ctx context.Context) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}

type Users interface {
	// GetUserByUsername expects a normalised username.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// CreateUser fails with ErrAlreadyExists on a duplicate username.
	CreateUser(ctx context.Context, u domain.User) error

	// TouchLastLogin records a successful login.
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error

	IsEmpty(ctx context.Context) (bool, error)
}

type Memories interface {
	// InsertMemory assigns ID and CreatedAt when they are zero and returns the
	// stored record.
	InsertMemory(ctx context.Context, m domain.Memory) (domain.Memory, error)

	// ListMemories returns every memory, newest first.
	ListMemories(ctx context.Context) ([]domain.Memory, error)

	// ListMemoriesByOwner returns the memories of one user, newest first.
	ListMemoriesByOwner(ctx context.Context, ownerID string) ([]domain.Memory, error)
}
