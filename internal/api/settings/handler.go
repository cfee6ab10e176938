package settings

import (
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/pkg/logger"
	"github.com/salescraft/outreach-backend/internal/pkg/response"
)

type Handler struct {
	usecase SettingsUsecase
}

func NewHandler(usecase SettingsUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// saveRequest wraps one category edit
type saveRequest struct {
	Category string          `json:"category"`
	Data     json.RawMessage `json:"data"`
}

// Get handles GET /settings
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetSettings")

	settings, err := h.usecase.Get(ctx)
	if err != nil {
		ctxzap.Error(ctx, "load settings failed", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	// The key itself stays server-side; clients only learn whether one
	// is configured.
	view := struct {
		Prompts   any  `json:"prompts"`
		APIConfig any  `json:"api_config"`
		HasAPIKey bool `json:"hasApiKey"`
	}{
		Prompts: settings.Prompts,
		APIConfig: struct {
			Model       string  `json:"model"`
			Temperature float64 `json:"temperature"`
			MaxTokens   int     `json:"maxTokens"`
			TopP        float64 `json:"topP"`
		}{
			Model:       settings.APIConfig.Model,
			Temperature: settings.APIConfig.Temperature,
			MaxTokens:   settings.APIConfig.MaxTokens,
			TopP:        settings.APIConfig.TopP,
		},
		HasAPIKey: settings.APIConfig.GeminiAPIKey != "",
	}

	response.Success(w, view)
}

// Save handles POST /settings
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SaveSettings")

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Warn(ctx, "malformed settings request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.usecase.Save(ctx, req.Category, req.Data); err != nil {
		ctxzap.Error(ctx, "save settings failed",
			zap.String("category", req.Category),
			zap.Error(err),
		)
		response.DomainError(w, err)
		return
	}

	response.Success(w, map[string]bool{"success": true})
}
