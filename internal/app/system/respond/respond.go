// internal/app/system/respond/respond.go
package respond

import (
	"errors"
	"io"
	"net/http"

	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxBodyBytes bounds decoded request bodies.
const MaxBodyBytes = 64 << 10

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	ID      string `json:"id,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":"internal","message":"encode response"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// Error writes err as an ErrorBody. Typed errors keep their kind, message
// and field. Anything else is reported as internal with a fresh id, and the
// cause is logged under that id instead of being returned to the client.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		ae = apperr.Internal("unexpected error", err)
	}

	detail := ErrorDetail{
		Code:    string(ae.Kind),
		Message: ae.Message,
		Field:   ae.Field,
	}
	if ae.Kind == apperr.KindInternal {
		detail.ID = uuid.NewString()
		detail.Message = "internal error"
		if log != nil {
			log.Error("request failed", zap.String("error_id", detail.ID), zap.Error(err))
		}
	}
	JSON(w, apperr.HTTPStatus(ae.Kind), ErrorBody{Error: detail})
}

// Decode reads a JSON body into dst. Malformed JSON, unknown fields, a
// trailing document or an oversized body are invalid input.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.InvalidInput("", "request body is empty")
		}
		return &apperr.Error{Kind: apperr.KindInvalidInput, Message: "malformed JSON body", Err: err}
	}
	if dec.More() {
		return apperr.InvalidInput("", "request body must hold a single JSON object")
	}
	return nil
}
