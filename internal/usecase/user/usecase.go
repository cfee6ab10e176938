package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/repository"
)

// UserUsecase implements the admin user management operations
type UserUsecase struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewUsecase(userRepo repository.UserRepository, logger *zap.Logger) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UserUsecase) List(ctx context.Context) ([]entity.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateRole changes a user's role. An admin cannot change their own
// role, which keeps at least one admin around.
func (uc *UserUsecase) UpdateRole(
	ctx context.Context, actorID, targetID string, role entity.UserRole,
) (*entity.User, error) {
	if _, err := uuid.Parse(targetID); err != nil {
		return nil, fmt.Errorf("%w: invalid user ID format", entity.ErrInvalidParameter)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: role %q", entity.ErrInvalidParameter, role)
	}
	if actorID == targetID {
		return nil, fmt.Errorf("%w: cannot change own role", entity.ErrInvalidParameter)
	}

	updated, err := uc.userRepo.UpdateRole(ctx, targetID, role)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	ctxzap.Info(ctx, "user role updated",
		zap.String("user_id", targetID),
		zap.String("role", string(role)),
	)
	return updated, nil
}

// Delete removes a user. Self-deletion is rejected for the same reason
// self-demotion is.
func (uc *UserUsecase) Delete(ctx context.Context, actorID, targetID string) error {
	if _, err := uuid.Parse(targetID); err != nil {
		return fmt.Errorf("%w: invalid user ID format", entity.ErrInvalidParameter)
	}
	if actorID == targetID {
		return fmt.Errorf("%w: cannot delete own account", entity.ErrInvalidParameter)
	}

	if err := uc.userRepo.Delete(ctx, targetID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	ctxzap.Info(ctx, "user deleted", zap.String("user_id", targetID))
	return nil
}
