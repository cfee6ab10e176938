package generation

import (
	"context"

	"github.com/salescraft/outreach-backend/internal/entity"
)

type GenerationUsecase interface {
	Generate(ctx context.Context, userID string, req *entity.GenerateRequest) (*entity.GenerationResult, error)
	GenerateOutreach(ctx context.Context, userID string, req *entity.OutreachRequest) (*entity.GenerationResult, error)
}
