package adminanalytics

import (
	"net/http"
	"time"

	"github.com/encodersih/alumni-connect/internal/app/store/audit"
	"github.com/encodersih/alumni-connect/internal/app/system/respond"
	"github.com/encodersih/alumni-connect/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeOverview handles GET / with the platform Report, computed from the
// current collections on every call.
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "admin analytics")
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		h.Log.Warn("analytics: list users", zap.Error(err))
		respond.Error(w, h.Log, err)
		return
	}
	alumni, err := h.Alumni.List(ctx)
	if err != nil {
		h.Log.Warn("analytics: list alumni", zap.Error(err))
		respond.Error(w, h.Log, err)
		return
	}
	counts, err := h.Requests.CountByStatus(ctx)
	if err != nil {
		h.Log.Warn("analytics: count requests", zap.Error(err))
		respond.Error(w, h.Log, err)
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	rep := Summarize(users, alumni, counts, h.TopIndustries, h.GrowthMonths, now())

	if h.Activity != nil && h.RecentActivity > 0 {
		events, err := h.Activity.Query(ctx, audit.QueryFilter{Limit: int64(h.RecentActivity)})
		if err != nil {
			// served without the feed
			h.Log.Warn("analytics: recent activity", zap.Error(err))
		} else {
			rep.RecentActivity = activitiesFrom(events)
		}
	}

	respond.JSON(w, http.StatusOK, rep)
}
