// internal/app/features/adminanalytics/handler.go
package adminanalytics

import (
	"context"
	"time"

	"github.com/encodersih/alumni-connect/internal/app/store/audit"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.uber.org/zap"
)

type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

type AlumniLister interface {
	List(ctx context.Context) ([]models.AlumniProfile, error)
}

type RequestCounter interface {
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// ActivityLog reads stored audit events. When nil, the overview has no
// recent activity and /activity is empty.
type ActivityLog interface {
	Query(ctx context.Context, filter audit.QueryFilter) ([]audit.Event, error)
	Count(ctx context.Context, filter audit.QueryFilter) (int64, error)
}

// Handler serves the admin platform overview.
type Handler struct {
	Users    UserLister
	Alumni   AlumniLister
	Requests RequestCounter
	Activity ActivityLog
	Log      *zap.Logger
	Now      func() time.Time

	TopIndustries  int // industries listed in the overview
	GrowthMonths   int // months of registrations listed in the overview
	RecentActivity int // audit events listed in the overview
}

func NewHandler(users UserLister, alumni AlumniLister, requests RequestCounter, activity ActivityLog, logger *zap.Logger) *Handler {
	return &Handler{
		Users:          users,
		Alumni:         alumni,
		Requests:       requests,
		Activity:       activity,
		Log:            logger,
		Now:            time.Now,
		TopIndustries:  5,
		GrowthMonths:   6,
		RecentActivity: 10,
	}
}
