package settings

import (
	"context"
	"encoding/json"
	"fmt"

	gocache "github.com/patrickmn/go-cache"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/pkg/validator"
	"github.com/salescraft/outreach-backend/internal/prompt"
	"github.com/salescraft/outreach-backend/internal/repository"
)

const cacheKey = "settings"

// SettingsUsecase serves the merged settings view and stores admin edits.
// Reads go through a TTL cache because every generation request loads the
// settings, while edits are rare.
type SettingsUsecase struct {
	settingsRepo repository.SettingsRepository
	validator    *validator.Validator
	cache        *gocache.Cache
	logger       *zap.Logger
}

func NewUsecase(
	settingsRepo repository.SettingsRepository,
	validator *validator.Validator,
	cache *gocache.Cache,
	logger *zap.Logger,
) *SettingsUsecase {
	return &SettingsUsecase{
		settingsRepo: settingsRepo,
		validator:    validator,
		cache:        cache,
		logger:       logger,
	}
}

// Defaults is the compiled-in configuration served before an admin ever
// saves anything. Stored categories are overlaid field by field on top.
func Defaults() *entity.Settings {
	return &entity.Settings{
		Prompts: entity.PromptSettings{
			Principles: "",
			Angles: []entity.Angle{
				{
					ID:     "problem-solution",
					Name:   "Problem/Solution",
					Prompt: "Lead with a specific problem the prospect likely faces, then position the product as the solution.",
				},
				{
					ID:     "social-proof",
					Name:   "Social Proof",
					Prompt: "Lead with results similar companies achieved. Name-drop customers or metrics from the social proof section.",
				},
				{
					ID:     "question-based",
					Name:   "Question Based",
					Prompt: "Open with a thought-provoking question about the prospect's situation to spark curiosity.",
				},
			},
			EmailMaxWords:    200,
			LinkedInMaxWords: 300,

			EmailSystemPrompt:       prompt.DefaultEmailSystemPrompt,
			LinkedInSystemPrompt:    prompt.DefaultLinkedInSystemPrompt,
			EmailUserPrompt:         prompt.DefaultEmailUserPrompt,
			LinkedInUserPrompt:      prompt.DefaultLinkedInUserPrompt,
			EmailNoContextPrompt:    prompt.DefaultEmailNoContextPrompt,
			LinkedInNoContextPrompt: prompt.DefaultLinkedInNoContextPrompt,

			BusinessInfoWarning: prompt.DefaultBusinessInfoWarning,
		},
		APIConfig: entity.APIConfig{
			GeminiAPIKey: "",
			Model:        "gemini-2.0-flash",
			Temperature:  0.7,
			MaxTokens:    1000,
			TopP:         0.9,
		},
	}
}

// Get returns defaults overlaid with stored categories, served from cache
// when fresh.
func (uc *SettingsUsecase) Get(ctx context.Context) (*entity.Settings, error) {
	if cached, ok := uc.cache.Get(cacheKey); ok {
		return cached.(*entity.Settings), nil
	}

	stored, err := uc.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	merged := Defaults()
	if raw, ok := stored[entity.SettingsCategoryPrompts]; ok {
		if err := json.Unmarshal(raw, &merged.Prompts); err != nil {
			return nil, fmt.Errorf("decode stored prompts settings: %w", err)
		}
	}
	if raw, ok := stored[entity.SettingsCategoryAPIConfig]; ok {
		if err := json.Unmarshal(raw, &merged.APIConfig); err != nil {
			return nil, fmt.Errorf("decode stored api config: %w", err)
		}
	}

	uc.cache.SetDefault(cacheKey, merged)
	return merged, nil
}

// Save validates and upserts one category, then drops the cached view so
// the next read reflects the edit.
func (uc *SettingsUsecase) Save(ctx context.Context, category string, data json.RawMessage) error {
	if err := uc.validator.ValidateSettingsSave(category, data); err != nil {
		return err
	}

	if err := uc.settingsRepo.Upsert(ctx, category, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	uc.cache.Delete(cacheKey)

	ctxzap.Info(ctx, "settings saved", zap.String("category", category))
	return nil
}
