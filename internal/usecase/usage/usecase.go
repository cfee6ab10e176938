package usage

import (
	"context"
	"fmt"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/pkg/formatter"
	pkgRetry "github.com/salescraft/outreach-backend/internal/pkg/retry"
	"github.com/salescraft/outreach-backend/internal/repository"
)

// UsageUsecase meters generation calls and serves the admin usage report.
type UsageUsecase struct {
	usageRepo repository.UsageRepository
	retryCfg  *pkgRetry.RetryConfig
	formats   *formatter.Factory
	logger    *zap.Logger
}

func NewUsecase(
	usageRepo repository.UsageRepository,
	retryCfg *pkgRetry.RetryConfig,
	formats *formatter.Factory,
	logger *zap.Logger,
) *UsageUsecase {
	return &UsageUsecase{
		usageRepo: usageRepo,
		retryCfg:  retryCfg,
		formats:   formats,
		logger:    logger,
	}
}

// ExportedReport is a rendered usage report ready to be sent as a file.
type ExportedReport struct {
	Data        []byte
	ContentType string
	Extension   string
}

// Record appends one usage row, retrying transient database failures.
// Callers run this off the request path; a generation must never fail
// because accounting did.
func (uc *UsageUsecase) Record(ctx context.Context, usage *entity.TokenUsage) error {
	err := retry.Do(
		func() error {
			return uc.usageRepo.Append(ctx, usage)
		},
		append(uc.retryCfg.ToRetryOptions(), retry.Context(ctx))...,
	)
	if err != nil {
		return fmt.Errorf("record usage: %w", err)
	}

	ctxzap.Info(ctx, "usage recorded",
		zap.String("model", usage.Model),
		zap.Int("total_tokens", usage.TotalTokens),
	)
	return nil
}

// Report aggregates usage per user over the requested period. An invalid
// period falls back to the full history, matching the dashboard default.
func (uc *UsageUsecase) Report(ctx context.Context, period entity.UsagePeriod) (*entity.UsageReport, error) {
	if !period.IsValid() {
		period = entity.PeriodAll
	}
	return uc.usageRepo.Aggregate(ctx, period)
}

// Export renders the aggregated report in the requested format.
func (uc *UsageUsecase) Export(
	ctx context.Context, period entity.UsagePeriod, format entity.ReportFormat,
) (*ExportedReport, error) {
	report, err := uc.Report(ctx, period)
	if err != nil {
		return nil, err
	}

	f, err := uc.formats.Create(format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidParameter, format)
	}

	data, err := f.Format(report)
	if err != nil {
		return nil, fmt.Errorf("format usage report: %w", err)
	}

	ctxzap.Info(ctx, "usage report exported",
		zap.String("period", string(period)),
		zap.String("format", string(format)),
	)
	return &ExportedReport{
		Data:        data,
		ContentType: f.ContentType(),
		Extension:   f.FileExtension(),
	}, nil
}
