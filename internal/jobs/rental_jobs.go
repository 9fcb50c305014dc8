package jobs

import (
	"context"
	"fmt"

	"assetrent-backend/internal/domain"
	"assetrent-backend/internal/logger"
)

// SendExpiryReminders notifies renters of rentals whose window has closed
// but which nobody has ended yet. The rental itself is left untouched;
// ending an expired rental is open to any caller.
func (jr *JobRunner) SendExpiryReminders() {
	jr.runWithRecovery("SendExpiryReminders", func() {
		ctx := context.Background()

		expired, err := jr.rentalRepo.ListExpired(ctx, jr.clock.Now())
		if err != nil {
			logger.Error("Failed to list expired rentals", "error", err)
			return
		}

		for _, rt := range expired {
			if rt.Renter == nil {
				continue
			}
			note := &domain.Notification{
				Identity: *rt.Renter,
				Title:    "Rental Expired",
				Message:  fmt.Sprintf("Rental %d expired at %d and can be ended to claim asset %d", rt.ID, rt.EndTime, rt.AssetID),
				Attributes: map[string]string{
					"type":      "RENTAL_EXPIRED",
					"rental_id": fmt.Sprintf("%d", rt.ID),
				},
			}
			if err := jr.noteRepo.Create(ctx, note); err != nil {
				logger.Error("Failed to create expiry reminder", "rental_id", rt.ID, "error", err)
				continue
			}
			logger.Debug("Expiry reminder sent", "rental_id", rt.ID, "renter", *rt.Renter)
		}

		logger.Info("Expiry reminders processed", "count", len(expired))
	})
}
