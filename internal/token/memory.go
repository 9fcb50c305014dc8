package token

import (
	"context"
	"sync"

	"assetrent-backend/internal/domain"
)

// MemoryService is an in-process Service used by tests and local runs.
type MemoryService struct {
	mu     sync.Mutex
	owners map[uint64]string
}

func NewMemoryService() *MemoryService {
	return &MemoryService{owners: make(map[uint64]string)}
}

func (s *MemoryService) Mint(ctx context.Context, assetID uint64, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owners[assetID]; ok {
		return domain.ErrTokenExists
	}
	s.owners[assetID] = owner
	return nil
}

func (s *MemoryService) Transfer(ctx context.Context, assetID uint64, from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.owners[assetID]
	if !ok {
		return domain.ErrTokenNotFound
	}
	if cur != from {
		return domain.ErrNotTokenOwner
	}
	s.owners[assetID] = to
	return nil
}

func (s *MemoryService) Burn(ctx context.Context, assetID uint64, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.owners[assetID]
	if !ok {
		return domain.ErrTokenNotFound
	}
	if cur != owner {
		return domain.ErrNotTokenOwner
	}
	delete(s.owners, assetID)
	return nil
}

func (s *MemoryService) OwnerOf(ctx context.Context, assetID uint64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.owners[assetID]
	if !ok {
		return "", domain.ErrTokenNotFound
	}
	return cur, nil
}
