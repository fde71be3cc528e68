package faq

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/add/{appID}/{userID}", h.AddEntry)
	r.Get("/{appID}/{userID}", h.ListEntries)
	return r
}
