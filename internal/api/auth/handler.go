package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/config"
	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/pkg/logger"
	"github.com/salescraft/outreach-backend/internal/pkg/response"
)

const stateCookieName = "google_oauth_state"

type Handler struct {
	usecase    AuthUsecase
	sessionCfg config.SessionConfig
}

func NewHandler(usecase AuthUsecase, sessionCfg config.SessionConfig) *Handler {
	return &Handler{
		usecase:    usecase,
		sessionCfg: sessionCfg,
	}
}

// GoogleLogin handles GET /auth/google: stores a CSRF state cookie and
// redirects to the Google consent screen.
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GoogleLogin")

	authURL, state, err := h.usecase.LoginURL()
	if err != nil {
		ctxzap.Error(ctx, "build login URL failed", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.sessionCfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, authURL, http.StatusFound)
}

// GoogleCallback handles GET /auth/google/callback. Failures redirect
// back to the login page with an error code instead of rendering JSON,
// since the browser is mid-navigation here.
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GoogleCallback")

	query := r.URL.Query()
	if errCode := query.Get("error"); errCode != "" {
		h.redirectLoginError(w, r, errCode)
		return
	}

	code := query.Get("code")
	state := query.Get("state")
	if code == "" || state == "" {
		h.redirectLoginError(w, r, "invalid_request")
		return
	}

	stored, err := r.Cookie(stateCookieName)
	h.clearCookie(w, stateCookieName)
	if err != nil || stored.Value == "" || stored.Value != state {
		ctxzap.Warn(ctx, "oauth state mismatch")
		h.redirectLoginError(w, r, "invalid_state")
		return
	}

	session, _, err := h.usecase.HandleCallback(ctx, code)
	if err != nil {
		ctxzap.Error(ctx, "oauth callback failed", zap.Error(err))
		h.redirectLoginError(w, r, loginErrorCode(err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCfg.CookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(h.sessionCfg.Duration.Seconds()),
		HttpOnly: true,
		Secure:   h.sessionCfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusFound)
}

// ExtensionAuth handles POST /auth/extension
func (h *Handler) ExtensionAuth(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExtensionAuth")

	var req entity.ExtensionAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, user, err := h.usecase.ExtensionAuth(ctx, req.Token)
	if err != nil {
		ctxzap.Warn(ctx, "extension auth failed", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Success(w, entity.ExtensionAuthResponse{
		Success: true,
		Token:   session.Token,
		User:    toUserDTO(user),
	})
}

// Session handles GET /auth/session
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetSession")

	token := h.extractToken(r)
	if token == "" {
		response.Error(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.usecase.GetSessionUser(ctx, token)
	if err != nil {
		response.DomainError(w, err)
		return
	}

	response.Success(w, map[string]any{"user": toUserDTO(user)})
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Logout")

	token := h.extractToken(r)
	if err := h.usecase.Logout(ctx, token); err != nil {
		ctxzap.Error(ctx, "logout failed", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	h.clearCookie(w, h.sessionCfg.CookieName)
	response.Success(w, map[string]bool{"success": true})
}

func (h *Handler) extractToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := r.Cookie(h.sessionCfg.CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func (h *Handler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.sessionCfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) redirectLoginError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, "/login?error="+url.QueryEscape(code), http.StatusFound)
}

func loginErrorCode(err error) string {
	switch {
	case errors.Is(err, entity.ErrEmailNotVerified):
		return "email_not_verified"
	case errors.Is(err, entity.ErrDomainNotAllowed):
		return "org_membership_required"
	default:
		return "authentication_failed"
	}
}
