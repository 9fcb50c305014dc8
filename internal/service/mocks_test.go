package service_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"assetrent-backend/internal/domain"
)

// In-memory repository fakes. The ledger's interesting behavior is the
// transition logic, so the fakes just keep records in maps and hand out ids
// the way the real store does: 0, 1, 2, ... in creation order.

type fakeRentalRepo struct {
	mu      sync.Mutex
	nextID  uint64
	byID    map[uint64]domain.Rental
	byAsset map[uint64]uint64
}

func newFakeRentalRepo() *fakeRentalRepo {
	return &fakeRentalRepo{
		byID:    make(map[uint64]domain.Rental),
		byAsset: make(map[uint64]uint64),
	}
}

func (f *fakeRentalRepo) Create(ctx context.Context, rt *domain.Rental) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rt.ID = f.nextID
	f.nextID++
	f.byID[rt.ID] = *rt
	f.byAsset[rt.AssetID] = rt.ID
	return nil
}

func (f *fakeRentalRepo) GetByID(ctx context.Context, id uint64) (*domain.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rt, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrRentalNotFound
	}
	cp := rt
	return &cp, nil
}

func (f *fakeRentalRepo) GetByAsset(ctx context.Context, assetID uint64) (*domain.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byAsset[assetID]
	if !ok {
		return nil, domain.ErrRentalNotFound
	}
	cp := f.byID[id]
	return &cp, nil
}

func (f *fakeRentalRepo) Update(ctx context.Context, rt *domain.Rental) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[rt.ID]; !ok {
		return domain.ErrRentalNotFound
	}
	f.byID[rt.ID] = *rt
	return nil
}

func (f *fakeRentalRepo) Delete(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rt, ok := f.byID[id]
	if !ok {
		return domain.ErrRentalNotFound
	}
	delete(f.byID, id)
	delete(f.byAsset, rt.AssetID)
	return nil
}

func (f *fakeRentalRepo) ListExpired(ctx context.Context, now uint64) ([]domain.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Rental
	for _, rt := range f.byID {
		if rt.Status == domain.RentalStatusActive && rt.EndTime <= now {
			out = append(out, rt)
		}
	}
	return out, nil
}

type fakeDisputeRepo struct {
	mu       sync.Mutex
	byRental map[uint64]domain.Dispute
}

func newFakeDisputeRepo() *fakeDisputeRepo {
	return &fakeDisputeRepo{byRental: make(map[uint64]domain.Dispute)}
}

func (f *fakeDisputeRepo) Upsert(ctx context.Context, d *domain.Dispute) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byRental[d.RentalID] = *d
	return nil
}

func (f *fakeDisputeRepo) GetByRental(ctx context.Context, rentalID uint64) (*domain.Dispute, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.byRental[rentalID]
	if !ok {
		return nil, domain.ErrDisputeNotFound
	}
	cp := d
	return &cp, nil
}

func (f *fakeDisputeRepo) ListPending(ctx context.Context) ([]domain.Dispute, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Dispute
	for _, d := range f.byRental {
		if d.Status == domain.DisputeStatusPending {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeRatingRepo struct {
	mu    sync.Mutex
	byKey map[uint64]map[domain.RatingRole]domain.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{byKey: make(map[uint64]map[domain.RatingRole]domain.Rating)}
}

func (f *fakeRatingRepo) Upsert(ctx context.Context, rating *domain.Rating) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.byKey[rating.RentalID] == nil {
		f.byKey[rating.RentalID] = make(map[domain.RatingRole]domain.Rating)
	}
	f.byKey[rating.RentalID][rating.Role] = *rating
	return nil
}

func (f *fakeRatingRepo) ListByRental(ctx context.Context, rentalID uint64) ([]domain.Rating, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Rating
	for _, r := range f.byKey[rentalID] {
		out = append(out, r)
	}
	return out, nil
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendAdminNotification(ctx context.Context, subject, message string) error {
	args := m.Called(ctx, subject, message)
	return args.Error(0)
}
