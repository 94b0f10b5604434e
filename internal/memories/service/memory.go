package service

import (
	"context"

	"github.com/aussiebroadwan/memorylane/internal/memories/domain"
	"github.com/aussiebroadwan/memorylane/internal/memories/store"
	"github.com/aussiebroadwan/memorylane/pkg/slogx"
)

type MemoryService struct {
	Store store.Store
}

// Create validates and stores m owned by ownerID, which may be empty for
// anonymous submissions. Any UserID already on m is ignored.
func (s *MemoryService) Create(ctx context.Context, m domain.Memory, ownerID string) (domain.Memory, error) {
	m, err := m.Normalize()
	if err != nil {
		return domain.Memory{}, err
	}
	m.ID = ""
	m.UserID = ownerID
	m.CreatedAt = m.CreatedAt.UTC()

	saved, err := s.Store.Memories().InsertMemory(ctx, m)
	if err != nil {
		return domain.Memory{}, err
	}

	slogx.FromContext(ctx).Info("memory saved", "memory_id", saved.ID, "owner", ownerID)
	return saved, nil
}

// List returns every memory, newest first.
func (s *MemoryService) List(ctx context.Context) ([]domain.Memory, error) {
	return s.Store.Memories().ListMemories(ctx)
}

// ListForOwner returns the memories of ownerID, newest first.
func (s *MemoryService) ListForOwner(ctx context.Context, ownerID string) ([]domain.Memory, error) {
	return s.Store.Memories().ListMemoriesByOwner(ctx, ownerID)
}
