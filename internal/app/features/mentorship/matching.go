package mentorship

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/encodersih/alumni-connect/internal/app/system/matching"
	"github.com/encodersih/alumni-connect/internal/app/system/respond"
	"github.com/encodersih/alumni-connect/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeMatching handles GET /matching.
//
//	?studentId=<hex>                       ranked recommendations
//	?studentId=<hex>&includeAnalytics=true  recommendations plus pool analytics
//	?studentId=<hex>&type=analytics         pool analytics only
//
// Scores are computed on every call against the current mentor pool.
func (h *Handler) ServeMatching(w http.ResponseWriter, r *http.Request) {
	studentID, err := parseID("studentId", query.Get(r, "studentId"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	kind := strings.ToLower(strings.TrimSpace(query.Get(r, "type")))
	if kind == "" {
		kind = TypeRecommendations
	}
	if kind != TypeRecommendations && kind != TypeAnalytics {
		respond.Error(w, h.Log, apperr.InvalidInput("type", "type must be recommendations or analytics"))
		return
	}
	h.Metrics.MatchingRequest(kind)

	sctx, scancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "load student")
	defer scancel()
	student, err := h.Students.GetByID(sctx, studentID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	mctx, mcancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "load mentor pool")
	defer mcancel()
	mentors, err := h.Mentors.ListMentors(mctx)
	if err != nil {
		h.Log.Warn("list mentors", zap.Error(err))
		respond.Error(w, h.Log, err)
		return
	}
	pool := matching.CandidatePool(mentors)

	if kind == TypeAnalytics {
		respond.JSON(w, http.StatusOK, analyticsResponse{Analytics: matching.Analyze(student, pool)})
		return
	}

	recs := matching.Rank(student, pool)
	h.Metrics.MatchScores(scoresOf(recs.Results))

	resp := recommendationsResponse{Student: student, Recommendations: recs}
	if query.Get(r, "includeAnalytics") == "true" {
		a := matching.Analyze(student, pool)
		resp.Analytics = &a
	}

	h.Log.Debug("matching computed",
		zap.String("student_id", studentID.Hex()),
		zap.Int("pool", len(pool)),
	)
	respond.JSON(w, http.StatusOK, resp)
}
