// Command notify runs one agenda report cycle and writes the JSON report to
// stdout. It reads the same configuration as the API server, so a cron entry
// outside the process can stand in for the built-in scheduler.
package main

import (
	"fmt"
	"os"

	"github.com/imovelhub/backoffice-api/internal/config"
	"github.com/imovelhub/backoffice-api/internal/database"
	"github.com/imovelhub/backoffice-api/internal/jobs"
	"github.com/imovelhub/backoffice-api/internal/logger"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/service"
)

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

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	visitRepo := repository.NewVisitRepository(db)
	contractRepo := repository.NewContractRepository(db)
	reportService := service.NewReportService(visitRepo, contractRepo, log)

	job := jobs.NewAgendaReportJob(
		reportService,
		log,
		os.Stdout,
		cfg.Dashboard.UpcomingVisitDays,
		cfg.Dashboard.ExpiringContractDays,
	)
	job.Run()

	return nil
}
