package users

import (
	"context"

	"github.com/salescraft/outreach-backend/internal/entity"
)

type UserUsecase interface {
	List(ctx context.Context) ([]entity.User, error)
	UpdateRole(ctx context.Context, actorID, targetID string, role entity.UserRole) (*entity.User, error)
	Delete(ctx context.Context, actorID, targetID string) error
}
