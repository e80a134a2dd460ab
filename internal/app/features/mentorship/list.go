package mentorship

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/encodersih/alumni-connect/internal/app/system/normalize"
	"github.com/encodersih/alumni-connect/internal/app/system/paging"
	"github.com/encodersih/alumni-connect/internal/app/system/respond"
	"github.com/encodersih/alumni-connect/internal/app/system/search"
	"github.com/encodersih/alumni-connect/internal/app/system/timeouts"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.uber.org/zap"
)

// ServeList handles GET /requests.
//
// userType=student lists the requests the student profile userId sent;
// userType=alumni lists those the alumni profile userId received;
// userType=admin lists every request and ignores userId. The list can be
// narrowed with status, category and search, and is paged with page/limit.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	userType := normalize.UserType(query.Get(r, "userType"))
	if userType == "" {
		respond.Error(w, h.Log, apperr.InvalidInput("userType", "userType is required"))
		return
	}

	q := search.RequestSchema.FromRequest(r)
	params, err := paging.ParseParams(r, h.DefaultPageSize, h.MaxPageSize)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list mentorship requests")
	defer cancel()

	var requests []models.MentorshipRequest
	switch userType {
	case models.UserTypeStudent, models.UserTypeAlumni:
		id, perr := parseID("userId", query.Get(r, "userId"))
		if perr != nil {
			respond.Error(w, h.Log, perr)
			return
		}
		if userType == models.UserTypeStudent {
			requests, err = h.Requests.ListByStudent(ctx, id)
		} else {
			requests, err = h.Requests.ListByMentor(ctx, id)
		}
	case models.UserTypeAdmin:
		requests, err = h.Requests.List(ctx)
	default:
		respond.Error(w, h.Log, apperr.InvalidInput("userType", "userType must be student, alumni or admin"))
		return
	}
	if err != nil {
		h.Log.Warn("list mentorship requests", zap.Error(err))
		respond.Error(w, h.Log, err)
		return
	}

	matched, err := search.Apply(requests, q, search.RequestSchema)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	h.Metrics.ListQuery("mentorship_requests", len(matched))

	page, err := paging.Paginate(matched, params.Page, params.PageSize)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.JSON(w, http.StatusOK, requestListResponse{
		Requests:   page.Items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	})
}
