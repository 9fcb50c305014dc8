package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	api "assetrent-backend/internal/api/http"
	"assetrent-backend/internal/clock"
	"assetrent-backend/internal/config"
	"assetrent-backend/internal/jobs"
	"assetrent-backend/internal/logger"
	"assetrent-backend/internal/payment"
	"assetrent-backend/internal/repository/postgres"
	"assetrent-backend/internal/scheduler"
	"assetrent-backend/internal/security"
	"assetrent-backend/internal/service"
	"assetrent-backend/internal/token"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting AssetRent backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Marketplace configuration", "owner", cfg.Marketplace.Owner, "fee_bps", cfg.Marketplace.FeeBps, "max_extension", cfg.Marketplace.MaxExtension)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Repositories and collaborators
	store := postgres.NewStore(db)
	payments := payment.NewPostgresService(db)
	tokens := token.NewPostgresService(db)
	clk := clock.NewSystemClock()

	// Security
	tokenManager := security.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenExpiryMinutes)*time.Minute)

	// Services
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.AdminEmail,
	)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.DisputeRepository,
		store.RatingRepository,
		store.NotificationRepository,
		payments,
		tokens,
		clk,
		emailSvc,
		service.MarketplaceRules{
			Owner:        cfg.Marketplace.Owner,
			FeeBps:       cfg.Marketplace.FeeBps,
			MaxExtension: cfg.Marketplace.MaxExtension,
			MaxReasonLen: cfg.Marketplace.MaxReasonLength,
		},
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Scheduled jobs
	jobRunner := jobs.NewJobRunner(
		store.RentalRepository,
		store.DisputeRepository,
		store.NotificationRepository,
		emailSvc,
		clk,
		cfg,
	)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// HTTP API
	rentalHandler := api.NewRentalHandler(rentalSvc)
	accountHandler := api.NewAccountHandler(payments)
	notificationHandler := api.NewNotificationHandler(noteSvc)
	router := api.NewRouter(tokenManager, rentalHandler, accountHandler, notificationHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
