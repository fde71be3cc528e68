package lesson

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/today", h.GetTodayLesson)
	r.Post("/generate", h.GenerateLesson)
	return r
}
