package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "carshare-backend/internal/api/http"
	"carshare-backend/internal/config"
	"carshare-backend/internal/jobs"
	"carshare-backend/internal/logger"
	"carshare-backend/internal/repository/postgres"
	"carshare-backend/internal/scheduler"
	"carshare-backend/internal/security"
	"carshare-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Optional .env for local development; ignore if absent.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CarShare Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	var emailSender service.EmailSender
	if cfg.Email.SendGridAPIKey != "" {
		emailSender = service.NewSendGridEmailSender(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Warn("SendGrid API key not configured, email notifications disabled")
	}

	var pushSender service.PushSender
	if cfg.Push.CredentialsFile != "" {
		pushSender, err = service.NewFCMPushSender(context.Background(), cfg.Push.CredentialsFile)
		if err != nil {
			log.Fatalf("Failed to initialize FCM push sender: %v", err)
		}
	} else {
		logger.Warn("FCM credentials not configured, push notifications disabled")
	}

	notifier := service.NewNotificationBridge(
		store.NotificationRepository,
		store.UserRepository,
		emailSender,
		pushSender,
	)

	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.VehicleRepository,
		store.EventRepository,
		notifier,
		cfg.Billing.CommissionPercent,
	)
	reportSvc := service.NewConditionReportService(
		store.ConditionReportRepository,
		store.ReservationRepository,
		reservationSvc,
	)
	calendarSvc := service.NewCalendarService(store.DateLockRepository, store.VehicleRepository)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	router := httpapi.NewRouter(
		tokenManager,
		httpapi.NewReservationHandler(reservationSvc),
		httpapi.NewVehicleHandler(vehicleSvc, calendarSvc),
		httpapi.NewReportHandler(reportSvc),
		httpapi.NewNotificationHandler(noteSvc),
		httpapi.NewPaymentWebhookHandler(reservationSvc, cfg.Payment.WebhookSecret),
	)

	// The expiry sweep runs in-process alongside the API.
	jobRunner := jobs.NewJobRunner(store, &jobs.Services{Reservation: reservationSvc}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}
