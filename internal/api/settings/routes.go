package settings

import (
	"github.com/go-chi/chi/v5"

	"github.com/salescraft/outreach-backend/internal/api/middleware"
)

// RegisterRoutes registers settings routes. Reading is open to any
// authenticated user, writing is admin-only.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/settings", func(r chi.Router) {
		r.Get("/", h.Get)
		r.With(middleware.RequireAdmin).Post("/", h.Save)
	})
}
