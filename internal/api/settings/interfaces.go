package settings

import (
	"context"
	"encoding/json"

	"github.com/salescraft/outreach-backend/internal/entity"
)

type SettingsUsecase interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Save(ctx context.Context, category string, data json.RawMessage) error
}
