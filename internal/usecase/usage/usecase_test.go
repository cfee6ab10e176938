package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/pkg/formatter"
	pkgRetry "github.com/salescraft/outreach-backend/internal/pkg/retry"
)

type fakeUsageRepo struct {
	rows        []*entity.TokenUsage
	appendFails int
	lastPeriod  entity.UsagePeriod
	report      *entity.UsageReport
}

func (f *fakeUsageRepo) Append(ctx context.Context, usage *entity.TokenUsage) error {
	if f.appendFails > 0 {
		f.appendFails--
		return errors.New("connection reset")
	}
	f.rows = append(f.rows, usage)
	return nil
}

func (f *fakeUsageRepo) Aggregate(ctx context.Context, period entity.UsagePeriod) (*entity.UsageReport, error) {
	f.lastPeriod = period
	if f.report != nil {
		return f.report, nil
	}
	return &entity.UsageReport{Period: period}, nil
}

func testUsecase(repo *fakeUsageRepo) *UsageUsecase {
	retryCfg := &pkgRetry.RetryConfig{Attempts: 3, Delay: time.Millisecond, MaxDelay: time.Millisecond}
	return NewUsecase(repo, retryCfg, formatter.NewFactory(), zap.NewNop())
}

func TestRecordRetriesTransientFailure(t *testing.T) {
	repo := &fakeUsageRepo{appendFails: 2}
	uc := testUsecase(repo)

	err := uc.Record(context.Background(), &entity.TokenUsage{Model: "gemini-2.0-flash", TotalTokens: 600})
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
}

func TestRecordGivesUpAfterAttempts(t *testing.T) {
	repo := &fakeUsageRepo{appendFails: 5}
	uc := testUsecase(repo)

	err := uc.Record(context.Background(), &entity.TokenUsage{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record usage")
	assert.Empty(t, repo.rows)
}

func TestReportInvalidPeriodFallsBackToAll(t *testing.T) {
	repo := &fakeUsageRepo{}
	uc := testUsecase(repo)

	report, err := uc.Report(context.Background(), entity.UsagePeriod("yesterday"))
	require.NoError(t, err)
	assert.Equal(t, entity.PeriodAll, repo.lastPeriod)
	assert.Equal(t, entity.PeriodAll, report.Period)
}

func TestExportMarkdown(t *testing.T) {
	repo := &fakeUsageRepo{report: &entity.UsageReport{
		Period: entity.Period7Days,
		Users: []entity.UserUsage{
			{Name: "Ada", Email: "ada@example.com", TotalRequests: 2, TotalTokens: 900, TotalCost: 0.0003},
		},
		Totals: entity.UsageTotals{TotalRequests: 2, TotalTokens: 900, TotalCost: 0.0003},
	}}
	uc := testUsecase(repo)

	exported, err := uc.Export(context.Background(), entity.Period7Days, entity.FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, ".md", exported.Extension)
	assert.Contains(t, exported.ContentType, "text/markdown")
	assert.Contains(t, string(exported.Data), "ada@example.com")
}

func TestExportUnknownFormat(t *testing.T) {
	uc := testUsecase(&fakeUsageRepo{})

	_, err := uc.Export(context.Background(), entity.PeriodAll, entity.ReportFormat("xlsx"))
	require.ErrorIs(t, err, entity.ErrInvalidParameter)
}
