package diagnostic

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate", h.GenerateQuestions)
	r.Post("/analyze", h.AnalyzeResults)
	return r
}
