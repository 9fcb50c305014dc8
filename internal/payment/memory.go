package payment

import (
	"context"
	"sync"

	"assetrent-backend/internal/domain"
)

// MemoryService is an in-process Service used by tests and local runs.
type MemoryService struct {
	mu       sync.Mutex
	balances map[string]uint64
}

func NewMemoryService() *MemoryService {
	return &MemoryService{balances: make(map[string]uint64)}
}

func (s *MemoryService) Transfer(ctx context.Context, amount uint64, from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.balances[from] < amount {
		return domain.ErrInsufficientFunds
	}
	s.balances[from] -= amount
	s.balances[to] += amount
	return nil
}

func (s *MemoryService) Balance(ctx context.Context, account string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balances[account], nil
}

func (s *MemoryService) Deposit(ctx context.Context, account string, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances[account] += amount
	return nil
}
