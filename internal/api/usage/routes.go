package usage

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers usage routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/usage", func(r chi.Router) {
		r.Get("/", h.Report)
		r.Get("/report", h.Export)
	})
}
