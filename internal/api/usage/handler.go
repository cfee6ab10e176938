package usage

import (
	"fmt"
	"net/http"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/pkg/logger"
	"github.com/salescraft/outreach-backend/internal/pkg/response"
)

type Handler struct {
	usecase UsageUsecase
}

func NewHandler(usecase UsageUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Report handles GET /usage
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UsageReport")

	period := entity.UsagePeriod(r.URL.Query().Get("period"))

	report, err := h.usecase.Report(ctx, period)
	if err != nil {
		ctxzap.Error(ctx, "usage aggregation failed", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Success(w, report)
}

// Export handles GET /usage/report
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UsageExport")

	period := entity.UsagePeriod(r.URL.Query().Get("period"))
	format := entity.ReportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}

	exported, err := h.usecase.Export(ctx, period, format)
	if err != nil {
		ctxzap.Error(ctx, "usage export failed",
			zap.String("format", string(format)),
			zap.Error(err),
		)
		response.DomainError(w, err)
		return
	}

	filename := fmt.Sprintf("usage-report-%s%s", time.Now().Format("2006-01-02"), exported.Extension)
	w.Header().Set("Content-Type", exported.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(exported.Data)
}
