package media

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers media processing routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/media", func(r chi.Router) {
		r.Post("/transcribe", h.Transcribe)
		r.Post("/image/analyze", h.AnalyzeImage)
		r.Post("/image/extract-text", h.ExtractText)
		r.Post("/nutrition", h.AnalyzeNutrition)
	})
}
