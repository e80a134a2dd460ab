package alumni

import "github.com/go-chi/chi/v5"

// Routes mounts the directory under the base path (typically "/api/alumni").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/search", h.ServeSearch)
	return r
}
