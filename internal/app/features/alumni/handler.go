// internal/app/features/alumni/handler.go
package alumni

import (
	"context"

	"github.com/encodersih/alumni-connect/internal/app/system/metrics"
	"github.com/encodersih/alumni-connect/internal/app/system/paging"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.uber.org/zap"
)

// Directory lists alumni profiles.
type Directory interface {
	List(ctx context.Context) ([]models.AlumniProfile, error)
}

// Handler serves the alumni directory.
type Handler struct {
	Alumni  Directory
	Metrics metrics.Recorder
	Log     *zap.Logger

	DefaultPageSize int
	MaxPageSize     int
}

func NewHandler(dir Directory, rec metrics.Recorder, logger *zap.Logger) *Handler {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Handler{
		Alumni:          dir,
		Metrics:         rec,
		Log:             logger,
		DefaultPageSize: paging.DefaultPageSize,
		MaxPageSize:     paging.MaxPageSize,
	}
}
