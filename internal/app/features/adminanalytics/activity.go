package adminanalytics

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/encodersih/alumni-connect/internal/app/store/audit"
	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/encodersih/alumni-connect/internal/app/system/paging"
	"github.com/encodersih/alumni-connect/internal/app/system/respond"
	"github.com/encodersih/alumni-connect/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Activity is the client view of an audit event.
type Activity struct {
	Type          string            `json:"type"`
	Category      string            `json:"category"`
	Description   string            `json:"description"`
	Timestamp     time.Time         `json:"timestamp"`
	Success       bool              `json:"success"`
	RequestID     string            `json:"request_id,omitempty"`
	UserID        string            `json:"user_id,omitempty"`
	FailureReason string            `json:"failure_reason,omitempty"`
	Details       map[string]string `json:"details,omitempty"`
}

var descriptions = map[string]string{
	audit.EventRequestCreated:       "New mentorship request submitted",
	audit.EventRequestStatusChanged: "Mentorship request decided",
	audit.EventTransitionRejected:   "Mentorship request change refused",
	audit.EventUserCreated:          "New user registered",
	audit.EventUserActivated:        "User activated",
	audit.EventUserDeactivated:      "User deactivated",
}

func activityFrom(e audit.Event) Activity {
	a := Activity{
		Type:          e.EventType,
		Category:      e.Category,
		Description:   descriptions[e.EventType],
		Timestamp:     e.Timestamp,
		Success:       e.Success,
		FailureReason: e.FailureReason,
		Details:       e.Details,
	}
	if a.Description == "" {
		a.Description = e.EventType
	}
	if e.RequestID != nil {
		a.RequestID = e.RequestID.Hex()
	}
	if e.UserID != nil {
		a.UserID = e.UserID.Hex()
	}
	return a
}

func activitiesFrom(events []audit.Event) []Activity {
	out := make([]Activity, len(events))
	for i, e := range events {
		out[i] = activityFrom(e)
	}
	return out
}

type activityResponse struct {
	Activity   []Activity `json:"activity"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}

// ServeActivity handles GET /activity?category=&eventType=&requestId=&page=&limit=,
// newest first.
func (h *Handler) ServeActivity(w http.ResponseWriter, r *http.Request) {
	params, err := paging.ParseParams(r, 20, paging.MaxPageSize)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	filter := audit.QueryFilter{
		Category:  strings.ToLower(query.Get(r, "category")),
		EventType: query.Get(r, "eventType"),
		Limit:     int64(params.PageSize),
		Offset:    int64((params.Page - 1) * params.PageSize),
	}
	if raw := query.Get(r, "requestId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			respond.Error(w, h.Log, apperr.InvalidInput("requestId", "requestId is not a valid id"))
			return
		}
		filter.RequestID = &id
	}

	resp := activityResponse{Activity: []Activity{}, Page: params.Page, PageSize: params.PageSize}
	if h.Activity == nil {
		respond.JSON(w, http.StatusOK, resp)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "query audit events")
	defer cancel()

	total, err := h.Activity.Count(ctx, filter)
	if err != nil {
		h.Log.Warn("count audit events", zap.Error(err))
		respond.Error(w, h.Log, err)
		return
	}
	events, err := h.Activity.Query(ctx, filter)
	if err != nil {
		h.Log.Warn("query audit events", zap.Error(err))
		respond.Error(w, h.Log, err)
		return
	}

	resp.Activity = activitiesFrom(events)
	resp.Total = int(total)
	resp.TotalPages = (resp.Total + params.PageSize - 1) / params.PageSize
	respond.JSON(w, http.StatusOK, resp)
}
