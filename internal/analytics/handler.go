package analytics

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adityahq/exammaster-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	appID := chi.URLParam(r, "appID")
	userID := chi.URLParam(r, "userID")

	var sub QuizSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		log.WithError(err).Error("invalid quiz submission payload")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis, ok := h.service.SubmitQuiz(r.Context(), appID, userID, sub)
	if !ok {
		config.Error(w, http.StatusInternalServerError, "failed to process quiz submission")
		return
	}

	config.JSON(w, http.StatusOK, map[string]any{
		"message":  "Quiz submitted and profile updated successfully",
		"analysis": analysis,
	})
}

func (h *Handler) TrackInteraction(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	appID := chi.URLParam(r, "appID")
	userID := chi.URLParam(r, "userID")

	var interaction TopicInteraction
	if err := json.NewDecoder(r.Body).Decode(&interaction); err != nil {
		log.WithError(err).Error("invalid interaction payload")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.service.TrackInteraction(r.Context(), appID, userID, interaction) {
		config.Error(w, http.StatusInternalServerError, "failed to track interaction")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Interaction tracked and profile updated successfully",
	})
}
