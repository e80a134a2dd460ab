package adminanalytics

import "github.com/go-chi/chi/v5"

// Routes mounts the overview (typically under "/api/admin/analytics").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeOverview)
	r.Get("/activity", h.ServeActivity)
	return r
}
