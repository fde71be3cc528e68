package formula

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

func (h *Handler) AddEntry(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	appID := chi.URLParam(r, "appID")
	userID := chi.URLParam(r, "userID")

	var req AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("invalid formula request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, ok := h.service.Add(r.Context(), appID, userID, req.Topic, req.Concept)
	if !ok {
		config.Error(w, http.StatusInternalServerError, "failed to store formula entry")
		return
	}

	config.JSON(w, http.StatusOK, map[string]any{
		"message": "Formula entry added successfully",
		"formula": entry,
	})
}

func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")
	userID := chi.URLParam(r, "userID")
	topicID := r.URL.Query().Get("topic_id")

	entries := h.service.List(r.Context(), appID, userID, topicID)
	config.JSON(w, http.StatusOK, map[string]any{
		"message":  "Formula entries retrieved successfully",
		"formulas": entries,
	})
}
