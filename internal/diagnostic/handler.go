package diagnostic

import (
	"encoding/json"
	"net/http"

	"github.com/adityahq/exammaster-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	appID := r.URL.Query().Get("app_id")
	userID := r.URL.Query().Get("user_id")

	var settings Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.WithError(err).Error("invalid diagnostic settings payload")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	questions, ok := h.service.GenerateQuestions(r.Context(), appID, userID, settings)
	if !ok {
		config.Error(w, http.StatusInternalServerError, "failed to generate diagnostic questions")
		return
	}

	config.JSON(w, http.StatusOK, map[string]any{
		"message":   "Diagnostic questions generated successfully",
		"questions": questions,
	})
}

func (h *Handler) AnalyzeResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	appID := r.URL.Query().Get("app_id")
	userID := r.URL.Query().Get("user_id")

	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		log.WithError(err).Error("invalid diagnostic submission payload")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, ok := h.service.Analyze(r.Context(), appID, userID, sub)
	if !ok {
		config.Error(w, http.StatusInternalServerError, "failed to update learning profile")
		return
	}

	config.JSON(w, http.StatusOK, map[string]any{
		"message": "Diagnostic results analyzed successfully",
		"analysis": map[string]any{
			"topicScores":      result.TopicScores,
			"strengths":        result.Strengths,
			"weaknesses":       result.Weaknesses,
			"overallScore":     result.OverallScore,
			"detailedAnalysis": result.Analysis,
		},
	})
}
