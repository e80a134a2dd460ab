package mentorship

import (
	"net/http"

	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/encodersih/alumni-connect/internal/app/system/inputval"
	"github.com/encodersih/alumni-connect/internal/app/system/metrics"
	"github.com/encodersih/alumni-connect/internal/app/system/respond"
	"github.com/encodersih/alumni-connect/internal/app/system/status"
	"github.com/encodersih/alumni-connect/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleUpdateStatus handles PUT /requests. Only pending requests can be
// accepted or declined; anything else is 409 and is audited as rejected.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var in updateRequestInput
	if err := respond.Decode(w, r, &in); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	if err := inputval.Validate(in).Err(); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	id, _ := parseID("request_id", in.RequestID)
	to := status.Normalize(in.Status)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update mentorship request")
	defer cancel()

	updated, err := h.Requests.UpdateStatus(ctx, id, to)
	if err != nil {
		switch apperr.KindOf(err) {
		case apperr.KindInvalidStateTransition:
			h.Metrics.Transition(metrics.OutcomeRejected)
			h.Audit.TransitionRejected(r.Context(), r, id, to, err.Error())
		case apperr.KindNotFound:
			h.Metrics.Transition(metrics.OutcomeNotFound)
		case apperr.KindInternal:
			h.Log.Warn("update mentorship request", zap.Error(err))
		}
		respond.Error(w, h.Log, err)
		return
	}

	h.Metrics.Transition(metrics.OutcomeApplied)
	h.Audit.RequestStatusChanged(r.Context(), r, updated, status.Pending)
	respond.JSON(w, http.StatusOK, requestResponse{
		Success: true,
		Request: updated,
		Message: "Mentorship request " + updated.Status + " successfully",
	})
}
