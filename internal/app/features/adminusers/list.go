package adminusers

import (
	"net/http"

	"github.com/encodersih/alumni-connect/internal/app/system/paging"
	"github.com/encodersih/alumni-connect/internal/app/system/respond"
	"github.com/encodersih/alumni-connect/internal/app/system/search"
	"github.com/encodersih/alumni-connect/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /users?search=&userType=&page=&limit=.
// Users are ordered by name.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := search.UserSchema.FromRequest(r)
	params, err := paging.ParseParams(r, h.DefaultPageSize, h.MaxPageSize)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list users")
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.Log.Warn("list users", zap.Error(err))
		respond.Error(w, h.Log, err)
		return
	}

	matched, err := search.Apply(users, q, search.UserSchema)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	h.Metrics.ListQuery("users", len(matched))

	page, err := paging.Paginate(matched, params.Page, params.PageSize)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, listResponse{
		Users:      page.Items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	})
}
