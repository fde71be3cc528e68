package syllabus

import (
	"net/http"

	"github.com/adityahq/exammaster-lambda/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) GetTopics(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]any{
		"message": "Syllabus topics retrieved successfully",
		"topics":  Catalog(),
	})
}
