package auth

import (
	"context"

	"github.com/salescraft/outreach-backend/internal/entity"
)

type AuthUsecase interface {
	LoginURL() (authURL, state string, err error)
	HandleCallback(ctx context.Context, code string) (*entity.Session, *entity.User, error)
	ExtensionAuth(ctx context.Context, accessToken string) (*entity.Session, *entity.User, error)
	GetSessionUser(ctx context.Context, token string) (*entity.User, error)
	Logout(ctx context.Context, token string) error
}
