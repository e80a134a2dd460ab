// internal/app/features/mentorship/handler.go
package mentorship

import (
	"context"

	"github.com/encodersih/alumni-connect/internal/app/system/auditlog"
	"github.com/encodersih/alumni-connect/internal/app/system/metrics"
	"github.com/encodersih/alumni-connect/internal/app/system/paging"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// StudentSource loads student profiles.
type StudentSource interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Student, error)
}

// MentorSource loads alumni profiles. ListMentors returns only profiles
// that are open to mentoring.
type MentorSource interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.AlumniProfile, error)
	ListMentors(ctx context.Context) ([]models.AlumniProfile, error)
}

// RequestStore persists mentorship requests.
type RequestStore interface {
	List(ctx context.Context) ([]models.MentorshipRequest, error)
	ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.MentorshipRequest, error)
	ListByMentor(ctx context.Context, mentorID primitive.ObjectID) ([]models.MentorshipRequest, error)
	Create(ctx context.Context, r models.MentorshipRequest) (models.MentorshipRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, to string) (models.MentorshipRequest, error)
}

// Handler serves the matching and mentorship request endpoints.
type Handler struct {
	Students StudentSource
	Mentors  MentorSource
	Requests RequestStore
	Audit    *auditlog.Logger
	Metrics  metrics.Recorder
	Log      *zap.Logger

	DefaultPageSize int
	MaxPageSize     int
}

// NewHandler constructs a mentorship Handler with the default page sizes.
// A nil recorder is replaced by metrics.Nop.
func NewHandler(students StudentSource, mentors MentorSource, requests RequestStore, audit *auditlog.Logger, rec metrics.Recorder, logger *zap.Logger) *Handler {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Handler{
		Students:        students,
		Mentors:         mentors,
		Requests:        requests,
		Audit:           audit,
		Metrics:         rec,
		Log:             logger,
		DefaultPageSize: paging.DefaultPageSize,
		MaxPageSize:     paging.MaxPageSize,
	}
}
