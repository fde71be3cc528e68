package analytics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/quiz-submission/{appID}/{userID}", h.SubmitQuiz)
	r.Post("/topic-interaction/{appID}/{userID}", h.TrackInteraction)
	return r
}
