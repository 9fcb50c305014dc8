package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"

	"assetrent-backend/internal/clock"
	"assetrent-backend/internal/config"
	"assetrent-backend/internal/jobs"
	"assetrent-backend/internal/logger"
	"assetrent-backend/internal/repository/postgres"
	"assetrent-backend/internal/service"
)

// Manual job runner: executes the scheduled jobs once and exits. Useful for
// operations and for testing schedules without waiting on cron.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	jobName := flag.String("job", "all", "Job to run: all, expiry-reminders, dispute-report")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.AdminEmail,
	)

	jobRunner := jobs.NewJobRunner(
		store.RentalRepository,
		store.DisputeRepository,
		store.NotificationRepository,
		emailSvc,
		clock.NewSystemClock(),
		cfg,
	)

	switch *jobName {
	case "all":
		jobRunner.RunAll()
	case "expiry-reminders":
		jobRunner.SendExpiryReminders()
	case "dispute-report":
		jobRunner.ReportPendingDisputes()
	default:
		log.Fatalf("Unknown job: %s", *jobName)
	}
}
