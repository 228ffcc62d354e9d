package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"carshare-backend/internal/config"
	"carshare-backend/internal/jobs"
	"carshare-backend/internal/logger"
	"carshare-backend/internal/repository/postgres"
	"carshare-backend/internal/scheduler"
	"carshare-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'expire-unpaid')")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CarShare Cronjob Runner...", "log_level", cfg.Log.Level)

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

	// Standalone job runs skip email and push senders; notification rows are
	// still written so users see expiries in their inbox.
	notifier := service.NewNotificationBridge(
		store.NotificationRepository,
		store.UserRepository,
		nil,
		nil,
	)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.VehicleRepository,
		store.EventRepository,
		notifier,
		cfg.Billing.CommissionPercent,
	)

	jobRunner := jobs.NewJobRunner(store, &jobs.Services{Reservation: reservationSvc}, cfg)

	if *runOnce != "" {
		switch *runOnce {
		case "expire-unpaid":
			jobRunner.ExpireUnpaidReservations()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	logger.Info("Scheduler started, waiting for jobs")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
	logger.Info("Scheduler stopped")
}
