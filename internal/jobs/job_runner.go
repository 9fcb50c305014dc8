package jobs

import (
	"assetrent-backend/internal/clock"
	"assetrent-backend/internal/config"
	"assetrent-backend/internal/logger"
	"assetrent-backend/internal/repository"
	"assetrent-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs. Jobs never mutate rental state:
// expiry is enforced lazily when EndRental is called, so the jobs here only
// observe and notify.
type JobRunner struct {
	rentalRepo  repository.RentalRepository
	disputeRepo repository.DisputeRepository
	noteRepo    repository.NotificationRepository
	emailSvc    service.EmailService
	clock       clock.Clock
	config      *config.Config
}

func NewJobRunner(
	rentalRepo repository.RentalRepository,
	disputeRepo repository.DisputeRepository,
	noteRepo repository.NotificationRepository,
	emailSvc service.EmailService,
	clk clock.Clock,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		rentalRepo:  rentalRepo,
		disputeRepo: disputeRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
		clock:       clk,
		config:      cfg,
	}
}

// Config returns the loaded configuration.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every job once (for manual execution via cmd/cronjob).
func (jr *JobRunner) RunAll() {
	jr.SendExpiryReminders()
	jr.ReportPendingDisputes()
}
