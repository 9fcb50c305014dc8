package repository

import (
	"context"

	"assetrent-backend/internal/domain"
)

type RentalRepository interface {
	// Create stores a new rental and assigns the next id. Ids are
	// allocated 0, 1, 2, ... in creation order.
	Create(ctx context.Context, rental *domain.Rental) error
	// GetByID returns domain.ErrRentalNotFound when the id is unknown.
	GetByID(ctx context.Context, id uint64) (*domain.Rental, error)
	// GetByAsset resolves the single open rental for an asset, or
	// domain.ErrRentalNotFound when the asset is not listed.
	GetByAsset(ctx context.Context, assetID uint64) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	// Delete removes the rental and thereby its asset index entry.
	Delete(ctx context.Context, id uint64) error
	// ListExpired returns active rentals whose window closed at or
	// before now.
	ListExpired(ctx context.Context, now uint64) ([]domain.Rental, error)
}

type DisputeRepository interface {
	// Upsert stores the dispute for a rental, replacing any prior one.
	Upsert(ctx context.Context, dispute *domain.Dispute) error
	GetByRental(ctx context.Context, rentalID uint64) (*domain.Dispute, error)
	ListPending(ctx context.Context) ([]domain.Dispute, error)
}

type RatingRepository interface {
	// Upsert stores a rating keyed by (rental_id, role), replacing any
	// prior rating from the same side.
	Upsert(ctx context.Context, rating *domain.Rating) error
	ListByRental(ctx context.Context, rentalID uint64) ([]domain.Rating, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, identity string, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int64, identity string) error
}
