package google

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/entity"
)

// MockConnector short-circuits Google OAuth for local development.
type MockConnector struct {
	logger *zap.Logger
	domain string
}

func NewMockConnector(logger *zap.Logger, allowedDomain string) *MockConnector {
	return &MockConnector{
		logger: logger,
		domain: allowedDomain,
	}
}

func (m *MockConnector) AuthURL(state string) string {
	return "/auth/google/callback?code=mock-code&state=" + state
}

func (m *MockConnector) ExchangeCode(ctx context.Context, code string) (*entity.GoogleTokenResponse, error) {
	ctxzap.Info(ctx, "[MOCK] exchanging OAuth code")
	return &entity.GoogleTokenResponse{
		AccessToken: "mock-access-token",
		ExpiresIn:   3600,
		TokenType:   "Bearer",
	}, nil
}

func (m *MockConnector) GetUserInfo(ctx context.Context, accessToken string) (*entity.GoogleUserInfo, error) {
	ctxzap.Info(ctx, "[MOCK] returning canned userinfo")
	return &entity.GoogleUserInfo{
		Sub:     "mock-google-id",
		Email:   "dev@" + m.domain,
		Name:    "Local Developer",
		Picture: "",
	}, nil
}
