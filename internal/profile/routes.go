package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{appID}/{userID}", h.GetProfile)
	r.Post("/{appID}/{userID}", h.UpdateProfile)
	return r
}
