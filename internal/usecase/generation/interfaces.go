package generation

import (
	"context"

	"github.com/salescraft/outreach-backend/internal/entity"
)

type GeminiConnector interface {
	GenerateContent(ctx context.Context, apiCfg entity.APIConfig, systemInstruction, userMessage string) (*entity.GeminiResponse, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (*entity.Settings, error)
}

type UsageRecorder interface {
	Record(ctx context.Context, usage *entity.TokenUsage) error
}
