// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"

	"github.com/encodersih/alumni-connect/internal/app/store/audit"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Destinations for a category of events.
const (
	DestAll = "all" // MongoDB + zap
	DestDB  = "db"
	DestLog = "log"
	DestOff = "off"
)

// Config picks a destination per event category.
type Config struct {
	Mentorship string
	Admin      string
}

// Sink persists events. *audit.Store satisfies it.
type Sink interface {
	Log(ctx context.Context, event audit.Event) error
}

// Logger writes audit events to a Sink and/or zap.
type Logger struct {
	sink   Sink
	zapLog *zap.Logger
	config Config
}

// New creates a Logger. sink may be nil when no category uses "db" or "all".
func New(sink Sink, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{sink: sink, zapLog: zapLog, config: config}
}

// IsValidDest reports whether s is a known destination.
func IsValidDest(s string) bool {
	switch s {
	case DestAll, DestDB, DestLog, DestOff:
		return true
	}
	return false
}

func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

// correlationID reuses chi's request id when the middleware ran.
func correlationID(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return uuid.NewString()
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("correlation_id", event.CorrelationID),
		zap.String("ip", event.IP),
	}
	if event.RequestID != nil {
		fields = append(fields, zap.String("request_id", event.RequestID.Hex()))
	}
	if event.UserID != nil {
		fields = append(fields, zap.String("user_id", event.UserID.Hex()))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records event according to the category's destination. A nil Logger
// is a no-op. Sink failures are logged, never returned: an audit write
// must not fail the request that triggered it.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var dest string
	switch event.Category {
	case audit.CategoryMentorship:
		dest = l.config.Mentorship
	case audit.CategoryAdmin:
		dest = l.config.Admin
	default:
		dest = DestAll
	}
	if dest == "" || dest == DestOff {
		return
	}

	if dest == DestAll || dest == DestLog {
		l.logToZap(event)
	}
	if (dest == DestAll || dest == DestDB) && l.sink != nil {
		if err := l.sink.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func (l *Logger) base(r *http.Request, category, eventType string, success bool) audit.Event {
	return audit.Event{
		Category:      category,
		EventType:     eventType,
		CorrelationID: correlationID(r),
		IP:            clientIP(r),
		UserAgent:     r.UserAgent(),
		Success:       success,
	}
}

// --- Mentorship events ---

// RequestCreated logs a new pending request.
func (l *Logger) RequestCreated(ctx context.Context, r *http.Request, req models.MentorshipRequest) {
	if l == nil {
		return
	}
	e := l.base(r, audit.CategoryMentorship, audit.EventRequestCreated, true)
	e.RequestID, e.StudentID, e.MentorID = &req.ID, &req.StudentID, &req.MentorID
	e.Details = map[string]string{"category": req.Category}
	l.Log(ctx, e)
}

// RequestStatusChanged logs an applied transition.
func (l *Logger) RequestStatusChanged(ctx context.Context, r *http.Request, req models.MentorshipRequest, from string) {
	if l == nil {
		return
	}
	e := l.base(r, audit.CategoryMentorship, audit.EventRequestStatusChanged, true)
	e.RequestID, e.StudentID, e.MentorID = &req.ID, &req.StudentID, &req.MentorID
	e.Details = map[string]string{"from": from, "to": req.Status}
	l.Log(ctx, e)
}

// TransitionRejected logs a refused status change on requestID.
func (l *Logger) TransitionRejected(ctx context.Context, r *http.Request, requestID primitive.ObjectID, to, reason string) {
	if l == nil {
		return
	}
	e := l.base(r, audit.CategoryMentorship, audit.EventTransitionRejected, false)
	e.RequestID = &requestID
	e.FailureReason = reason
	e.Details = map[string]string{"to": to}
	l.Log(ctx, e)
}

// --- Admin events ---

// UserCreated logs an account created through the admin API.
func (l *Logger) UserCreated(ctx context.Context, r *http.Request, u models.User) {
	if l == nil {
		return
	}
	e := l.base(r, audit.CategoryAdmin, audit.EventUserCreated, true)
	e.UserID = &u.ID
	e.Details = map[string]string{"user_type": u.UserType, "email": u.Email}
	l.Log(ctx, e)
}

// UserActiveChanged logs an activation or deactivation.
func (l *Logger) UserActiveChanged(ctx context.Context, r *http.Request, u models.User) {
	if l == nil {
		return
	}
	et := audit.EventUserDeactivated
	if u.IsActive {
		et = audit.EventUserActivated
	}
	e := l.base(r, audit.CategoryAdmin, et, true)
	e.UserID = &u.ID
	l.Log(ctx, e)
}
