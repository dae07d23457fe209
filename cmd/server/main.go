package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/joya-energy/solar-simulation-backend/internal/api"
	"github.com/joya-energy/solar-simulation-backend/internal/config"
	"github.com/joya-energy/solar-simulation-backend/internal/database"
	"github.com/joya-energy/solar-simulation-backend/internal/pvgis"
	"github.com/joya-energy/solar-simulation-backend/internal/repository"
	"github.com/joya-energy/solar-simulation-backend/internal/service"
	"github.com/joya-energy/solar-simulation-backend/internal/simulation"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	comparisonRepo := repository.NewComparisonRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	yieldService := service.NewYieldService(pvgis.NewClient(cfg.PVGIS.BaseURL))
	comparisonService := service.NewComparisonService(
		comparisonRepo,
		yieldService,
		cfg.Simulation,
	)
	auditService := service.NewAuditService(
		auditRepo,
		yieldService,
		simulation.DefaultTariff(),
		cfg.Simulation,
	)
	shareService, err := service.NewShareService(
		cfg.Share.FernetKey,
		time.Duration(cfg.Share.TokenTTLHours)*time.Hour,
	)
	if err != nil {
		log.Fatalf("Failed to initialize share service: %v", err)
	}

	// Warm the yield cache and refresh it on a schedule
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.PVGIS.RefreshSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		yieldService.RefreshAll(ctx)
	}); err != nil {
		log.Fatalf("Failed to schedule yield refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		yieldService.RefreshAll(ctx)
	}()

	// Create router
	router := api.NewRouter(api.Services{
		System:     systemService,
		Yield:      yieldService,
		Comparison: comparisonService,
		Audit:      auditService,
		Share:      shareService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
