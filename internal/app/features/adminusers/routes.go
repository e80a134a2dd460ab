package adminusers

import "github.com/go-chi/chi/v5"

// Routes mounts user management (typically under "/api/admin/users").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)
	r.Put("/", h.HandleSetActive)
	return r
}
