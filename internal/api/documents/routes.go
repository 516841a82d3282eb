package documents

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers document generation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/documents", func(r chi.Router) {
		r.Post("/meeting-minutes", h.MeetingMinutes)
		r.Post("/financial-format", h.FinancialFormat)
		r.Post("/summarize", h.Summarize)
		r.Post("/process-meeting", h.ProcessMeeting)
	})
}
