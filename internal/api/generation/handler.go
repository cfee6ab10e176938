package generation

import (
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/api/middleware"
	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/pkg/logger"
	"github.com/salescraft/outreach-backend/internal/pkg/response"
)

type Handler struct {
	usecase GenerationUsecase
}

func NewHandler(usecase GenerationUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Generate handles POST /generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Generate")

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req entity.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Warn(ctx, "malformed generate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.usecase.Generate(ctx, user.ID, &req)
	if err != nil {
		ctxzap.Error(ctx, "generation failed", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Success(w, result)
}

// GenerateOutreach handles POST /generate/outreach
func (h *Handler) GenerateOutreach(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateOutreach")

	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req entity.OutreachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Warn(ctx, "malformed outreach request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.usecase.GenerateOutreach(ctx, user.ID, &req)
	if err != nil {
		ctxzap.Error(ctx, "outreach generation failed",
			zap.String("channel", string(req.Channel)),
			zap.Error(err),
		)
		response.DomainError(w, err)
		return
	}

	response.Success(w, result)
}
