package jobs

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"go.uber.org/zap"
)

// AgendaReportJobName is the name of the periodic agenda report job.
const AgendaReportJobName = "agenda_report"

// reportTimeout bounds each report run.
const reportTimeout = 30 * time.Second

// AgendaService builds the agenda report. The interface keeps the job from
// importing the service package directly.
type AgendaService interface {
	Agenda(ctx context.Context, visitDays, contractDays int) (*domain.AgendaReport, error)
}

// AgendaReportJob periodically assembles the agenda report and writes it to
// the configured sink, stdout by default. Each run is an independent read;
// nothing is recorded between runs.
type AgendaReportJob struct {
	reports      AgendaService
	logger       *zap.Logger
	out          io.Writer
	visitDays    int
	contractDays int
}

// NewAgendaReportJob creates the job. A nil out falls back to stdout.
func NewAgendaReportJob(reports AgendaService, logger *zap.Logger, out io.Writer, visitDays, contractDays int) *AgendaReportJob {
	if out == nil {
		out = os.Stdout
	}
	return &AgendaReportJob{
		reports:      reports,
		logger:       logger,
		out:          out,
		visitDays:    visitDays,
		contractDays: contractDays,
	}
}

// Run executes one report cycle. It is called by the scheduler according to
// the configured cron expression.
func (j *AgendaReportJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	report, err := j.reports.Agenda(ctx, j.visitDays, j.contractDays)
	if err != nil {
		j.logger.Error("agenda report failed", zap.Error(err))
		return
	}

	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		j.logger.Error("failed to write agenda report", zap.Error(err))
		return
	}

	j.logger.Info("agenda report generated",
		zap.String("generated_at", report.GeneratedAt),
		zap.Int("upcoming_visits", len(report.UpcomingVisits)),
		zap.Int("expiring_contracts", len(report.ExpiringContracts)),
	)
}
