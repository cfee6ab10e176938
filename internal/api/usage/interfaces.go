package usage

import (
	"context"

	"github.com/salescraft/outreach-backend/internal/entity"
	usecaseUsage "github.com/salescraft/outreach-backend/internal/usecase/usage"
)

type UsageUsecase interface {
	Report(ctx context.Context, period entity.UsagePeriod) (*entity.UsageReport, error)
	Export(ctx context.Context, period entity.UsagePeriod, format entity.ReportFormat) (*usecaseUsage.ExportedReport, error)
}
