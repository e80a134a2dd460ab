package mentorship

import (
	"net/http"

	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/encodersih/alumni-connect/internal/app/system/htmlsanitize"
	"github.com/encodersih/alumni-connect/internal/app/system/inputval"
	"github.com/encodersih/alumni-connect/internal/app/system/normalize"
	"github.com/encodersih/alumni-connect/internal/app/system/respond"
	"github.com/encodersih/alumni-connect/internal/app/system/timeouts"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate handles POST /requests. The new request is always pending.
// Student and mentor names are copied onto the request so lists can be
// searched by name.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createRequestInput
	if err := respond.Decode(w, r, &in); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	if err := inputval.Validate(in).Err(); err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	message := htmlsanitize.PlainText(in.Message)
	if message == "" {
		respond.Error(w, h.Log, apperr.InvalidInput("message", "Message is required."))
		return
	}
	category := normalize.Name(in.Category)

	studentID, _ := parseID("student_id", in.StudentID)
	mentorID, _ := parseID("mentor_id", in.MentorID)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create mentorship request")
	defer cancel()

	student, err := h.Students.GetByID(ctx, studentID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	mentor, err := h.Mentors.GetByID(ctx, mentorID)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	if !mentor.Eligible() {
		respond.Error(w, h.Log, apperr.InvalidInput("mentor_id", "this alumni is not accepting mentees"))
		return
	}

	created, err := h.Requests.Create(ctx, models.MentorshipRequest{
		StudentID:   student.ID,
		MentorID:    mentor.ID,
		StudentName: student.FullName(),
		MentorName:  mentor.FullName(),
		Category:    category,
		Message:     message,
	})
	if err != nil {
		h.Log.Warn("create mentorship request", zap.Error(err))
		respond.Error(w, h.Log, err)
		return
	}

	h.Audit.RequestCreated(r.Context(), r, created)
	respond.JSON(w, http.StatusCreated, requestResponse{
		Success: true,
		Request: created,
		Message: "Mentorship request sent successfully",
	})
}
