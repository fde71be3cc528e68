package revision

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adityahq/exammaster-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateRevision(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	appID := r.URL.Query().Get("app_id")
	userID := r.URL.Query().Get("user_id")

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("invalid revision request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	revision, ok := h.service.Generate(r.Context(), appID, userID, req)
	if !ok {
		log.WithField("topic", req.TopicID).Error("failed to generate revision content")
		config.Error(w, http.StatusInternalServerError, "failed to generate revision content")
		return
	}

	config.JSON(w, http.StatusOK, map[string]any{
		"message":  fmt.Sprintf("Generated %s revision content successfully", req.RevisionType),
		"revision": revision,
	})
}
