package jobs

import (
	"context"
	"fmt"
	"strings"

	"assetrent-backend/internal/logger"
)

// ReportPendingDisputes mails the marketplace operators a digest of open
// disputes. Disputes are resolved off-platform, so the ledger only surfaces
// them.
func (jr *JobRunner) ReportPendingDisputes() {
	jr.runWithRecovery("ReportPendingDisputes", func() {
		ctx := context.Background()

		pending, err := jr.disputeRepo.ListPending(ctx)
		if err != nil {
			logger.Error("Failed to list pending disputes", "error", err)
			return
		}
		if len(pending) == 0 {
			logger.Info("No pending disputes")
			return
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%d pending dispute(s):\n\n", len(pending))
		for _, d := range pending {
			fmt.Fprintf(&b, "rental %d, filed by %s on %s: %s\n", d.RentalID, d.Filer, d.CreatedOn, d.Reason)
		}

		if err := jr.emailSvc.SendAdminNotification(ctx, "Pending Dispute Report", b.String()); err != nil {
			logger.Error("Failed to send dispute report", "error", err)
			return
		}
		logger.Info("Dispute report sent", "count", len(pending))
	})
}
