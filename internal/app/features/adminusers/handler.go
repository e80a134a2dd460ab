// internal/app/features/adminusers/handler.go
package adminusers

import (
	"context"

	"github.com/encodersih/alumni-connect/internal/app/system/auditlog"
	"github.com/encodersih/alumni-connect/internal/app/system/metrics"
	"github.com/encodersih/alumni-connect/internal/app/system/paging"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserStore is the slice of the users store this feature needs.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) (models.User, error)
}

// Handler serves the admin user management endpoints.
type Handler struct {
	Users   UserStore
	Audit   *auditlog.Logger
	Metrics metrics.Recorder
	Log     *zap.Logger

	DefaultPageSize int
	MaxPageSize     int
}

func NewHandler(users UserStore, audit *auditlog.Logger, rec metrics.Recorder, logger *zap.Logger) *Handler {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Handler{
		Users:           users,
		Audit:           audit,
		Metrics:         rec,
		Log:             logger,
		DefaultPageSize: paging.DefaultPageSize,
		MaxPageSize:     paging.MaxPageSize,
	}
}
