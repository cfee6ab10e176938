package auth

import (
	"context"

	"github.com/salescraft/outreach-backend/internal/entity"
)

type GoogleConnector interface {
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*entity.GoogleTokenResponse, error)
	GetUserInfo(ctx context.Context, accessToken string) (*entity.GoogleUserInfo, error)
}
