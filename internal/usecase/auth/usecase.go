package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/config"
	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/repository"
)

// AuthUsecase implements both login surfaces: the dashboard OAuth web
// flow and the extension access-token exchange. Both end in the same
// place, a session row whose token the client presents afterwards.
type AuthUsecase struct {
	userRepo      repository.UserRepository
	sessionRepo   repository.SessionRepository
	google        GoogleConnector
	sessionCfg    config.SessionConfig
	allowedDomain string
	logger        *zap.Logger
}

func NewUsecase(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	google GoogleConnector,
	sessionCfg config.SessionConfig,
	allowedDomain string,
	logger *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		google:        google,
		sessionCfg:    sessionCfg,
		allowedDomain: allowedDomain,
		logger:        logger,
	}
}

// LoginURL generates a CSRF state and the Google consent URL. The handler
// stores the state in a short-lived cookie and validates it on callback.
func (uc *AuthUsecase) LoginURL() (authURL, state string, err error) {
	state, err = randomToken()
	if err != nil {
		return "", "", fmt.Errorf("generate oauth state: %w", err)
	}
	return uc.google.AuthURL(state), state, nil
}

// HandleCallback finishes the web flow: code exchange, profile fetch,
// policy checks, user upsert, session creation.
func (uc *AuthUsecase) HandleCallback(ctx context.Context, code string) (*entity.Session, *entity.User, error) {
	tokens, err := uc.google.ExchangeCode(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", entity.ErrUnauthorized, err)
	}

	return uc.loginWithAccessToken(ctx, tokens.AccessToken)
}

// ExtensionAuth verifies an access token the extension obtained via
// chrome.identity and returns a bearer session.
func (uc *AuthUsecase) ExtensionAuth(ctx context.Context, accessToken string) (*entity.Session, *entity.User, error) {
	if accessToken == "" {
		return nil, nil, fmt.Errorf("%w: token", entity.ErrMissingField)
	}
	return uc.loginWithAccessToken(ctx, accessToken)
}

func (uc *AuthUsecase) loginWithAccessToken(ctx context.Context, accessToken string) (*entity.Session, *entity.User, error) {
	info, err := uc.google.GetUserInfo(ctx, accessToken)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", entity.ErrUnauthorized, err)
	}

	if !info.Verified() {
		return nil, nil, entity.ErrEmailNotVerified
	}
	if !uc.domainAllowed(info.Email) {
		ctxzap.Warn(ctx, "login rejected, email domain not allowed", zap.String("email", info.Email))
		return nil, nil, entity.ErrDomainNotAllowed
	}

	user, err := uc.upsertUser(ctx, info)
	if err != nil {
		return nil, nil, err
	}

	session, err := uc.createSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	ctxzap.Info(ctx, "user logged in",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
	)
	return session, user, nil
}

// GetSessionUser resolves a session token to its user and bumps the
// session's last-activity timestamp.
func (uc *AuthUsecase) GetSessionUser(ctx context.Context, token string) (*entity.User, error) {
	user, err := uc.sessionRepo.GetUserByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := uc.sessionRepo.TouchActivity(ctx, token); err != nil {
		// Activity tracking is advisory, the login itself stands.
		ctxzap.Warn(ctx, "touch session activity failed", zap.Error(err))
	}
	return user, nil
}

// Logout deletes the session behind the token. Unknown tokens are not an
// error, logout is idempotent.
func (uc *AuthUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return uc.sessionRepo.DeleteByToken(ctx, token)
}

// CleanupExpiredSessions removes sessions past their expiry. Run
// periodically from the application loop.
func (uc *AuthUsecase) CleanupExpiredSessions(ctx context.Context) error {
	deleted, err := uc.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("cleanup expired sessions: %w", err)
	}
	if deleted > 0 {
		ctxzap.Info(ctx, "expired sessions removed", zap.Int64("count", deleted))
	}
	return nil
}

// CookieName exposes the configured session cookie name to handlers.
func (uc *AuthUsecase) CookieName() string {
	return uc.sessionCfg.CookieName
}

func (uc *AuthUsecase) SessionDuration() time.Duration {
	return uc.sessionCfg.Duration
}

func (uc *AuthUsecase) SecureCookies() bool {
	return uc.sessionCfg.SecureCookies
}

func (uc *AuthUsecase) domainAllowed(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	return strings.EqualFold(email[at+1:], uc.allowedDomain)
}

func (uc *AuthUsecase) upsertUser(ctx context.Context, info *entity.GoogleUserInfo) (*entity.User, error) {
	name := info.Name
	if name == "" {
		name = strings.SplitN(info.Email, "@", 2)[0]
	}

	user, err := uc.userRepo.GetByEmail(ctx, info.Email)
	switch {
	case err == nil:
		if err := uc.userRepo.UpdateProfile(ctx, user.ID, name, info.Picture, info.GoogleID()); err != nil {
			return nil, fmt.Errorf("update user profile: %w", err)
		}
		if err := uc.userRepo.TouchLogin(ctx, user.ID, info.GoogleID()); err != nil {
			return nil, fmt.Errorf("touch last login: %w", err)
		}
		user.Name = name
		user.AvatarURL = info.Picture
		return user, nil

	case errors.Is(err, entity.ErrUserNotFound):
		created, cerr := uc.userRepo.Create(ctx, &entity.User{
			ID:        uuid.New().String(),
			Email:     info.Email,
			Name:      name,
			AvatarURL: info.Picture,
			GoogleID:  info.GoogleID(),
			Role:      entity.RoleRegular,
		})
		if cerr != nil {
			return nil, fmt.Errorf("create user: %w", cerr)
		}
		ctxzap.Info(ctx, "new user registered", zap.String("email", created.Email))
		return created, nil

	default:
		return nil, fmt.Errorf("lookup user: %w", err)
	}
}

func (uc *AuthUsecase) createSession(ctx context.Context, userID string) (*entity.Session, error) {
	token, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	session := &entity.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(uc.sessionCfg.Duration),
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
