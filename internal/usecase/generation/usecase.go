package generation

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/pkg/logger"
	"github.com/salescraft/outreach-backend/internal/pkg/validator"
	"github.com/salescraft/outreach-backend/internal/pricing"
	"github.com/salescraft/outreach-backend/internal/prompt"
)

const defaultRequestType = "generate"

// GenerationUsecase runs the full generation flow: validate, load admin
// settings, assemble prompts when needed, dispatch to Gemini, split
// variants and meter usage.
type GenerationUsecase struct {
	gemini    GeminiConnector
	settings  SettingsProvider
	usage     UsageRecorder
	validator *validator.Validator
	logger    *zap.Logger

	// mockMode skips the API key check so the mock connector works
	// without admin configuration.
	mockMode bool
}

func NewUsecase(
	gemini GeminiConnector,
	settings SettingsProvider,
	usage UsageRecorder,
	validator *validator.Validator,
	logger *zap.Logger,
	mockMode bool,
) *GenerationUsecase {
	return &GenerationUsecase{
		gemini:    gemini,
		settings:  settings,
		usage:     usage,
		validator: validator,
		logger:    logger,
		mockMode:  mockMode,
	}
}

// Generate serves the pre-assembled prompt contract: the caller already
// built the prompt text and the server only proxies, meters and splits.
func (uc *GenerationUsecase) Generate(
	ctx context.Context, userID string, req *entity.GenerateRequest,
) (*entity.GenerationResult, error) {
	if err := uc.validator.ValidateGenerate(req); err != nil {
		return nil, err
	}

	cfg, err := uc.apiConfig(ctx)
	if err != nil {
		return nil, err
	}

	requestType := req.RequestType
	if requestType == "" {
		requestType = defaultRequestType
	}

	return uc.dispatch(ctx, userID, cfg, req.SystemInstruction, req.UserMessage, requestType)
}

// GenerateOutreach serves the structured contract: the server assembles
// the prompts from form data, admin settings and captured page context.
func (uc *GenerationUsecase) GenerateOutreach(
	ctx context.Context, userID string, req *entity.OutreachRequest,
) (*entity.GenerationResult, error) {
	if err := uc.validator.ValidateOutreach(req); err != nil {
		return nil, err
	}

	settings, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if err := uc.checkAPIKey(&settings.APIConfig); err != nil {
		return nil, err
	}

	var systemInstruction, userMessage string
	if req.Channel == entity.ChannelCustom {
		userMessage = prompt.BuildCustomPrompt(req.CustomPrompt, req.FormData, req.Context)
	} else {
		systemInstruction = prompt.BuildSystemInstruction(
			req.Channel, req.FormData, req.Tone, &settings.Prompts, req.AngleID)
		userMessage = prompt.BuildUserMessage(req.Channel, req.Context, &settings.Prompts)
	}

	ctxzap.Info(ctx, "outreach prompts assembled",
		zap.String("channel", string(req.Channel)),
		zap.Bool("has_context", req.Context != nil),
		zap.String("angle_id", req.AngleID),
	)

	return uc.dispatch(ctx, userID, &settings.APIConfig, systemInstruction, userMessage, string(req.Channel))
}

func (uc *GenerationUsecase) dispatch(
	ctx context.Context, userID string, cfg *entity.APIConfig,
	systemInstruction, userMessage, requestType string,
) (*entity.GenerationResult, error) {
	resp, err := uc.gemini.GenerateContent(ctx, *cfg, systemInstruction, userMessage)
	if err != nil {
		return nil, err
	}

	text := resp.Text()
	variants := SplitVariants(text)

	result := &entity.GenerationResult{
		Success: true,
		Content: text,
	}
	if len(variants) > 0 {
		result.Content = variants[0]
	}
	if len(variants) > 1 {
		result.Variants = variants
	}

	if resp.UsageMetadata != nil {
		result.Usage = uc.meter(ctx, userID, cfg.Model, requestType, resp.UsageMetadata)
	}

	ctxzap.Info(ctx, "generation completed",
		zap.Int("content_length", len(result.Content)),
		zap.Int("variant_count", len(variants)),
	)

	return result, nil
}

// meter computes the cost estimate and records the usage row off the
// request path. A failed write is logged and swallowed, never surfaced.
func (uc *GenerationUsecase) meter(
	ctx context.Context, userID, model, requestType string, meta *entity.GeminiUsageMetadata,
) *entity.GenerationUsage {
	cost := pricing.EstimateCost(model, meta.PromptTokenCount, meta.CandidatesTokenCount)

	row := &entity.TokenUsage{
		UserID:           userID,
		Model:            model,
		PromptTokens:     meta.PromptTokenCount,
		CompletionTokens: meta.CandidatesTokenCount,
		TotalTokens:      meta.TotalTokenCount,
		EstimatedCost:    cost,
		RequestType:      requestType,
	}

	dctx := logger.Detach(ctx)
	go func() {
		if err := uc.usage.Record(dctx, row); err != nil {
			ctxzap.Warn(dctx, "usage accounting write failed", zap.Error(err))
		}
	}()

	return &entity.GenerationUsage{
		PromptTokens:     meta.PromptTokenCount,
		CompletionTokens: meta.CandidatesTokenCount,
		TotalTokens:      meta.TotalTokenCount,
		EstimatedCost:    cost,
	}
}

func (uc *GenerationUsecase) apiConfig(ctx context.Context) (*entity.APIConfig, error) {
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if err := uc.checkAPIKey(&settings.APIConfig); err != nil {
		return nil, err
	}
	return &settings.APIConfig, nil
}

func (uc *GenerationUsecase) checkAPIKey(cfg *entity.APIConfig) error {
	if cfg.GeminiAPIKey == "" && !uc.mockMode {
		return entity.ErrAPIKeyNotSet
	}
	return nil
}
