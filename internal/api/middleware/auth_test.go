package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salescraft/outreach-backend/internal/entity"
)

type fakeResolver struct {
	users map[string]*entity.User
}

func (f *fakeResolver) GetSessionUser(ctx context.Context, token string) (*entity.User, error) {
	if u, ok := f.users[token]; ok {
		return u, nil
	}
	return nil, entity.ErrSessionNotFound
}

func (f *fakeResolver) CookieName() string {
	return "sales_admin_session"
}

func authedEcho(t *testing.T, captured **entity.User) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := CurrentUser(r.Context())
		require.True(t, ok)
		*captured = u
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateBearerToken(t *testing.T) {
	resolver := &fakeResolver{users: map[string]*entity.User{
		"tok-1": {ID: "u1", Role: entity.RoleRegular},
	}}

	var got *entity.User
	handler := Authenticate(resolver)(authedEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/generate", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)
}

func TestAuthenticateSessionCookie(t *testing.T) {
	resolver := &fakeResolver{users: map[string]*entity.User{
		"cookie-tok": {ID: "u2", Role: entity.RoleAdmin},
	}}

	var got *entity.User
	handler := Authenticate(resolver)(authedEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	req.AddCookie(&http.Cookie{Name: "sales_admin_session", Value: "cookie-tok"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "u2", got.ID)
}

func TestAuthenticateMissingCredentials(t *testing.T) {
	handler := Authenticate(&fakeResolver{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/generate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	handler := Authenticate(&fakeResolver{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/generate", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name string
		role entity.UserRole
		want int
	}{
		{"admin passes", entity.RoleAdmin, http.StatusOK},
		{"regular rejected", entity.RoleRegular, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &fakeResolver{users: map[string]*entity.User{
				"tok": {ID: "u1", Role: tt.role},
			}}
			handler := Authenticate(resolver)(RequireAdmin(http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				})))

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			req.Header.Set("Authorization", "Bearer tok")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCORSEchoesExtensionOrigin(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "chrome-extension://abcdefgh")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "chrome-extension://abcdefgh", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run on preflight")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/generate", nil)
	req.Header.Set("Origin", "chrome-extension://abcdefgh")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCORSUnknownOriginGetsNoHeaders(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
