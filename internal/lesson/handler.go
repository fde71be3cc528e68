package lesson

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

func (h *Handler) GetTodayLesson(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	appID := r.URL.Query().Get("app_id")
	userID := r.URL.Query().Get("user_id")

	if stored := h.service.Today(r.Context(), appID, userID); stored != nil {
		config.JSON(w, http.StatusOK, map[string]any{
			"message": "Today's lesson retrieved successfully",
			"lesson":  stored,
		})
		return
	}

	l, ok := h.service.GenerateDaily(r.Context(), appID, userID)
	if !ok {
		log.WithField("user_id", userID).Error("failed to generate daily lesson")
		config.Error(w, http.StatusInternalServerError, "failed to store generated daily lesson")
		return
	}

	config.JSON(w, http.StatusOK, map[string]any{
		"message": "Today's lesson retrieved successfully",
		"lesson":  l,
	})
}

func (h *Handler) GenerateLesson(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	appID := r.URL.Query().Get("app_id")
	userID := r.URL.Query().Get("user_id")

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("invalid lesson request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DifficultyLevel == "" {
		req.DifficultyLevel = "intermediate"
	}

	l, ok := h.service.Generate(r.Context(), appID, userID, req.TopicID, req.DifficultyLevel)
	if !ok {
		log.WithField("topic", req.TopicID).Error("failed to generate lesson")
		config.Error(w, http.StatusInternalServerError, "failed to store generated lesson")
		return
	}

	config.JSON(w, http.StatusOK, map[string]any{
		"message": "Lesson generated successfully",
		"lesson":  l,
	})
}
