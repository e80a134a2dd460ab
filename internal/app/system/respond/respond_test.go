package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v (%s)", err, rec.Body.String())
	}
	return body.Error
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]int{"total": 3})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"total":3}` {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestError_TypedKinds(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantKind  string
		wantField string
	}{
		{"invalid input", apperr.InvalidInput("studentId", "studentId is required"), 400, "invalid_input", "studentId"},
		{"not found", apperr.NotFound("student", "abc"), 404, "not_found", ""},
		{"transition", apperr.InvalidTransition("accepted", "declined"), 409, "invalid_state_transition", "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, zap.NewNop(), tt.err)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			got := decodeError(t, rec)
			if got.Code != tt.wantKind || got.Field != tt.wantField {
				t.Errorf("error = %+v, want %s/%s", got, tt.wantKind, tt.wantField)
			}
			if got.ID != "" {
				t.Errorf("typed errors should not carry an id, got %q", got.ID)
			}
		})
	}
}

func TestError_InternalHidesCause(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	rec := httptest.NewRecorder()

	Error(rec, zap.New(core), errors.New("connection refused by 10.0.0.5"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	got := decodeError(t, rec)
	if got.Code != "internal" || got.ID == "" {
		t.Errorf("error = %+v, want internal with id", got)
	}
	if strings.Contains(rec.Body.String(), "10.0.0.5") {
		t.Error("internal cause leaked to client")
	}
	if logs.Len() != 1 || logs.All()[0].ContextMap()["error_id"] != got.ID {
		t.Errorf("expected one log entry carrying error_id %s", got.ID)
	}
}

func TestDecode(t *testing.T) {
	type input struct {
		Status string `json:"status"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"ok", `{"status":"accepted"}`, false},
		{"empty", ``, true},
		{"malformed", `{"status":`, true},
		{"unknown field", `{"status":"accepted","extra":1}`, true},
		{"two documents", `{"status":"a"}{"status":"b"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(tt.body))
			var in input
			err := Decode(httptest.NewRecorder(), r, &in)
			if tt.wantErr {
				if !errors.Is(err, apperr.ErrInvalidInput) {
					t.Errorf("Decode() error = %v, want invalid input", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if in.Status != "accepted" {
				t.Errorf("Status = %q", in.Status)
			}
		})
	}
}
