package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"habitquest/internal/catalog"
	"habitquest/internal/config"
	"habitquest/internal/database"
	"habitquest/internal/handlers"
	"habitquest/internal/jobs"
	"habitquest/internal/repository"
	"habitquest/internal/service"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Infof("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Info("Migrations completed successfully")

	// Load activity catalog
	cat, err := catalog.Load(cfg.ActivitiesPath)
	if err != nil {
		log.Fatalf("Failed to load activity catalog: %v", err)
	}

	log.Infof("Activity catalog loaded (%d activities)", len(cat.Activities))

	// Initialize repository and services
	stateRepo := repository.NewStateRepository(db)

	progression, err := service.NewProgressionService(stateRepo, cat, cfg.BaseDailyTarget)
	if err != nil {
		log.Fatalf("Failed to initialize progression engine: %v", err)
	}

	// Initialize handlers
	floaters := handlers.NewFloaters(cfg.FloaterLifetime)
	activityHandler := handlers.NewActivityHandler(cat, progression, floaters)
	stateHandler := handlers.NewStateHandler(progression, floaters)
	rolloverHandler := handlers.NewRolloverHandler(progression)
	rewardHandler := handlers.NewRewardHandler(progression)

	// Setup routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/state", stateHandler.GetState)
	mux.HandleFunc("GET /api/activities", activityHandler.ListActivities)
	mux.HandleFunc("POST /api/activities/{label}/tap", activityHandler.Tap)
	mux.HandleFunc("POST /api/day/clear", activityHandler.ClearToday)
	mux.HandleFunc("GET /api/week", stateHandler.GetWeek)
	mux.HandleFunc("GET /api/month", stateHandler.GetMonth)
	mux.HandleFunc("GET /api/frequency", stateHandler.GetFrequency)
	mux.HandleFunc("GET /api/advice", stateHandler.GetAdvice)
	mux.HandleFunc("GET /api/rollover", rolloverHandler.GetPending)
	mux.HandleFunc("POST /api/rollover/{kind}/confirm", rolloverHandler.Confirm)
	mux.HandleFunc("POST /api/rollover/{kind}/decline", rolloverHandler.Decline)
	mux.HandleFunc("GET /api/reward", rewardHandler.GetReward)
	mux.HandleFunc("PUT /api/reward", rewardHandler.UpdateReward)

	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start the midnight rollover check
	scheduler := jobs.NewScheduler(progression)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Infof("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Shutdown error: %v", err)
	}
}
