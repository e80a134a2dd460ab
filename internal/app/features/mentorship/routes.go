// internal/app/features/mentorship/routes.go
package mentorship

import "github.com/go-chi/chi/v5"

// Routes mounts the mentorship endpoints (typically under
// "/api/mentorship" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/matching", h.ServeMatching)

	r.Get("/requests", h.ServeList)
	r.Post("/requests", h.HandleCreate)
	r.Put("/requests", h.HandleUpdateStatus)

	return r
}
