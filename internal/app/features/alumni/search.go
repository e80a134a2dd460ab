package alumni

import (
	"net/http"

	"github.com/encodersih/alumni-connect/internal/app/system/paging"
	"github.com/encodersih/alumni-connect/internal/app/system/respond"
	"github.com/encodersih/alumni-connect/internal/app/system/search"
	"github.com/encodersih/alumni-connect/internal/app/system/timeouts"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.uber.org/zap"
)

type searchResponse struct {
	Alumni     []models.AlumniProfile `json:"alumni"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	TotalPages int                    `json:"total_pages"`
}

// ServeSearch handles GET /search?search=&industry=&mentorsOnly=&page=&limit=.
// Text matches names, company, position and skills; industry=all or empty
// disables the industry filter.
func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	q := search.AlumniSchema.FromRequest(r)
	params, err := paging.ParseParams(r, h.DefaultPageSize, h.MaxPageSize)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list alumni")
	defer cancel()

	all, err := h.Alumni.List(ctx)
	if err != nil {
		h.Log.Warn("list alumni", zap.Error(err))
		respond.Error(w, h.Log, err)
		return
	}

	matched, err := search.Apply(all, q, search.AlumniSchema)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	h.Metrics.ListQuery("alumni_profiles", len(matched))

	page, err := paging.Paginate(matched, params.Page, params.PageSize)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, searchResponse{
		Alumni:     page.Items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	})
}
