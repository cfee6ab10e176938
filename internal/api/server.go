package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	authapi "github.com/salescraft/outreach-backend/internal/api/auth"
	"github.com/salescraft/outreach-backend/internal/api/docs"
	generationapi "github.com/salescraft/outreach-backend/internal/api/generation"
	"github.com/salescraft/outreach-backend/internal/api/middleware"
	settingsapi "github.com/salescraft/outreach-backend/internal/api/settings"
	usageapi "github.com/salescraft/outreach-backend/internal/api/usage"
	usersapi "github.com/salescraft/outreach-backend/internal/api/users"
)

// Handlers bundles the per-resource handlers for router assembly
type Handlers struct {
	Auth       *authapi.Handler
	Generation *generationapi.Handler
	Settings   *settingsapi.Handler
	Usage      *usageapi.Handler
	Users      *usersapi.Handler
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(h *Handlers, sessions middleware.SessionResolver, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS)
	r.Use(chimiddleware.Timeout(120 * time.Second))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Public auth surface: login flows and session introspection
	authapi.RegisterRoutes(r, h.Auth)

	// Authenticated surface
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(sessions))

		generationapi.RegisterRoutes(r, h.Generation)
		settingsapi.RegisterRoutes(r, h.Settings)

		// Admin-only groups
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			usageapi.RegisterRoutes(r, h.Usage)
			usersapi.RegisterRoutes(r, h.Users)
		})
	})

	return r
}
