package service

import (
	"context"

	"assetrent-backend/internal/domain"
)

// RentalService is the rental ledger: the full set of lifecycle transitions
// for uniquely-owned digital assets. Every method is an atomic transition;
// it either commits all of its effects or returns an error with no state
// change. The caller identity is passed explicitly on each call.
type RentalService interface {
	CreateRental(ctx context.Context, caller string, assetID, duration, price uint64) (uint64, error)
	Rent(ctx context.Context, caller string, rentalID uint64) error
	Extend(ctx context.Context, caller string, rentalID, additionalUnits uint64) error
	EndRental(ctx context.Context, caller string, rentalID uint64) error
	CancelRental(ctx context.Context, caller string, rentalID uint64) error
	FileDispute(ctx context.Context, caller string, rentalID uint64, reason string) error
	Rate(ctx context.Context, caller string, rentalID uint64, asRenter bool, score uint8, review string) error
	CollectMarketplaceFee(ctx context.Context, caller string, rentalID uint64) (uint64, error)

	GetRental(ctx context.Context, rentalID uint64) (*domain.Rental, error)
	GetAssetRental(ctx context.Context, assetID uint64) (uint64, error)
	GetDispute(ctx context.Context, rentalID uint64) (*domain.Dispute, error)
	ListRatings(ctx context.Context, rentalID uint64) ([]domain.Rating, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, identity string, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, identity string, notificationID int64) error
}

type EmailService interface {
	// SendAdminNotification mails the marketplace operators.
	SendAdminNotification(ctx context.Context, subject, message string) error
}
