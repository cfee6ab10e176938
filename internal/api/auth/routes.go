package auth

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the public auth routes. Session resolution is
// done inside the handlers, not by the auth middleware, because these
// endpoints must work for logged-out callers.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Get("/google", h.GoogleLogin)
		r.Get("/google/callback", h.GoogleCallback)
		r.Post("/extension", h.ExtensionAuth)
		r.Get("/session", h.Session)
		r.Post("/logout", h.Logout)
	})
}
