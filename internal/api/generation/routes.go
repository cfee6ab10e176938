package generation

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers generation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/generate", func(r chi.Router) {
		r.Post("/", h.Generate)
		r.Post("/outreach", h.GenerateOutreach)
	})
}
