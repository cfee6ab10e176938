package users

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers user management routes. The whole group is
// admin-only.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.List)

		r.Route("/{user_id}", func(r chi.Router) {
			r.Patch("/", h.UpdateRole)
			r.Delete("/", h.Delete)
		})
	})
}
