package jobs_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/jobs"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/service"
	"github.com/imovelhub/backoffice-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAgendaReportJob_Run(t *testing.T) {
	db := testutil.SetupTestDB(t)
	log := zap.NewNop()

	visitRepo := repository.NewVisitRepository(db)
	contractRepo := repository.NewContractRepository(db)
	reports := service.NewReportService(visitRepo, contractRepo, log)

	property := testutil.CreateTestProperty(t, db)
	client := testutil.CreateTestClient(t, db)
	testutil.CreateTestVisit(t, db, property.ID, client.ID, func(v *domain.Visit) {
		v.ScheduledAt = time.Now().UTC().Add(24 * time.Hour).Format(domain.TimestampLayout)
	})

	var buf bytes.Buffer
	job := jobs.NewAgendaReportJob(reports, log, &buf, 7, 30)
	job.Run()

	var report domain.AgendaReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.NotEmpty(t, report.GeneratedAt)
	assert.Len(t, report.UpcomingVisits, 1)
	assert.NotNil(t, report.ExpiringContracts)
}

func TestSchedulerRejectsDuplicateJobNames(t *testing.T) {
	s := jobs.NewScheduler(zap.NewNop())

	require.NoError(t, s.AddJob("report", "0 8 * * *", func() {}))
	assert.Error(t, s.AddJob("report", "0 8 * * *", func() {}))
	assert.Error(t, s.AddJob("broken", "not a cron expr", func() {}))
}
