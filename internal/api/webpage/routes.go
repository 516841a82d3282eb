package webpage

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers webpage Q&A routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/webpage", func(r chi.Router) {
		r.Post("/store", h.StoreWebpage)
		r.Post("/ask", h.Ask)
		r.Get("/sessions", h.ListSessions)
		r.Get("/session/{id}", h.GetSession)
		r.Delete("/session/{id}", h.DeleteSession)
	})
}
