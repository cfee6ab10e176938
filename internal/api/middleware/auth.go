package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/salescraft/outreach-backend/internal/entity"
	"github.com/salescraft/outreach-backend/internal/pkg/response"
)

// SessionResolver resolves a session token to its user. Implemented by
// the auth usecase.
type SessionResolver interface {
	GetSessionUser(ctx context.Context, token string) (*entity.User, error)
	CookieName() string
}

type userContextKey struct{}

// CurrentUser returns the authenticated user stored by Authenticate.
func CurrentUser(ctx context.Context) (*entity.User, bool) {
	u, ok := ctx.Value(userContextKey{}).(*entity.User)
	return u, ok
}

// Authenticate accepts either the dashboard session cookie or an
// Authorization bearer token from the extension. Both carry the same
// session token.
func Authenticate(sessions SessionResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, sessions.CookieName())
			if token == "" {
				response.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}

			user, err := sessions.GetSessionUser(r.Context(), token)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey{}, user)
			ctx = ctxzap.ToContext(ctx, ctxzap.Extract(ctx).With(
				zap.String("user_id", user.ID),
			))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin guards the admin-only routes. Must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := CurrentUser(r.Context())
		if !ok {
			response.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if user.Role != entity.RoleAdmin {
			response.Error(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractToken(r *http.Request, cookieName string) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}
