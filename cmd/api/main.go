package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/imovelhub/backoffice-api/docs"
	"github.com/imovelhub/backoffice-api/internal/config"
	"github.com/imovelhub/backoffice-api/internal/database"
	"github.com/imovelhub/backoffice-api/internal/http/handler"
	"github.com/imovelhub/backoffice-api/internal/http/middleware"
	"github.com/imovelhub/backoffice-api/internal/http/router"
	"github.com/imovelhub/backoffice-api/internal/jobs"
	"github.com/imovelhub/backoffice-api/internal/logger"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/service"
	"go.uber.org/zap"
)

// @title ImovelHub Backoffice API
// @version 1.0
// @description Back-office API for property listings, client pipeline, visits and contracts

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Shared API key, presented as "Bearer <key>" or "Token <key>"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Sqlite deployments carry their schema in process; postgres uses the
	// goose migrations in cmd/migrate.
	if cfg.Database.Driver != "postgres" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize repositories
	propertyRepo := repository.NewPropertyRepository(db)
	clientRepo := repository.NewClientRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	contractRepo := repository.NewContractRepository(db)

	// Initialize services
	propertyService := service.NewPropertyService(propertyRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	visitService := service.NewVisitService(visitRepo, propertyRepo, clientRepo, log)
	contractService := service.NewContractService(contractRepo, propertyRepo, clientRepo, log)
	dashboardService := service.NewDashboardService(propertyRepo, clientRepo, visitRepo, contractRepo, log)
	reportService := service.NewReportService(visitRepo, contractRepo, log)

	// Initialize middleware and handlers
	authMiddleware := middleware.NewAuth(&cfg.Auth, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	systemHandler := handler.NewSystemHandler(cfg, db, log)
	propertyHandler := handler.NewPropertyHandler(propertyService, log)
	clientHandler := handler.NewClientHandler(clientService, log)
	visitHandler := handler.NewVisitHandler(visitService, log)
	contractHandler := handler.NewContractHandler(contractService, log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, &cfg.Dashboard, log)

	rt := router.NewRouter(
		cfg,
		log,
		authMiddleware,
		rateLimiter,
		systemHandler,
		propertyHandler,
		clientHandler,
		visitHandler,
		contractHandler,
		dashboardHandler,
	)

	// Initialize and start scheduler for the agenda report job
	var scheduler *jobs.Scheduler
	if cfg.Notifier.Enabled {
		scheduler = jobs.NewScheduler(log)
		reportJob := jobs.NewAgendaReportJob(
			reportService,
			log,
			nil,
			cfg.Dashboard.UpcomingVisitDays,
			cfg.Dashboard.ExpiringContractDays,
		)
		if err := scheduler.AddJob(jobs.AgendaReportJobName, cfg.Notifier.CronExpr, reportJob.Run); err != nil {
			log.Error("Failed to register agenda report job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with agenda report job",
				zap.String("cron_expr", cfg.Notifier.CronExpr),
			)
		}
	} else {
		log.Info("Notifier disabled; agenda report job not scheduled")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
