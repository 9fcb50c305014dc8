package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"assetrent-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.RentalRepository
	repository.DisputeRepository
	repository.RatingRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		RentalRepository:       NewRentalRepository(db),
		DisputeRepository:      NewDisputeRepository(db),
		RatingRepository:       NewRatingRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
