package profile

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adityahq/exammaster-lambda/internal/config"
	"github.com/adityahq/exammaster-lambda/internal/docstore"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "appID")
	userID := chi.URLParam(r, "userID")

	p := h.service.GetOrCreate(r.Context(), appID, userID)
	config.JSON(w, http.StatusOK, map[string]any{"profile": p})
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	appID := chi.URLParam(r, "appID")
	userID := chi.URLParam(r, "userID")

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("invalid profile payload")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !h.service.Replace(r.Context(), appID, userID, docstore.ToMap(req)) {
		log.WithField("user_id", userID).Error("failed to update learning profile")
		config.Error(w, http.StatusInternalServerError, "failed to update learning profile")
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Learning profile updated successfully",
	})
}
