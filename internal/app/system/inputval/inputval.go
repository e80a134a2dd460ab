// internal/app/system/inputval/inputval.go
//
// Package inputval validates decoded request bodies with
// go-playground/validator. Structs declare rules in a `validate` tag and a
// human name in a `label` tag:
//
//	type createInput struct {
//	    StudentID string `json:"student_id" validate:"required,objectid" label:"Student"`
//	    Message   string `json:"message" validate:"max=2000" label:"Message"`
//	}
//
// Field names in results are the JSON names, so they can be echoed back to
// API clients unchanged.
package inputval

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/encodersih/alumni-connect/internal/app/system/status"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string // JSON name
	Label   string
	Tag     string
	Message string
}

// Result collects every failed rule for a struct.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first message, or "".
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All returns every message in field order.
func (r Result) All() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.Message
	}
	return out
}

// Err converts the first failure into an invalid_input error, or nil.
func (r Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return apperr.InvalidInput(r.Errors[0].Field, r.Errors[0].Message)
}

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		mustRegister(v, "objectid", func(fl validator.FieldLevel) bool {
			return primitive.IsValidObjectID(fl.Field().String())
		})
		mustRegister(v, "reqstatus", func(fl validator.FieldLevel) bool {
			return status.IsValid(status.Normalize(fl.Field().String()))
		})
		mustRegister(v, "usertype", func(fl validator.FieldLevel) bool {
			return IsValidUserType(fl.Field().String())
		})
		mustRegister(v, "availability", func(fl validator.FieldLevel) bool {
			return IsValidAvailability(fl.Field().String())
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("inputval: register %s: %v", tag, err))
	}
}

// Validate runs the struct rules on s (a struct or pointer to struct).
func Validate(s any) Result {
	err := instance().Struct(s)
	if err == nil {
		return Result{}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{Errors: []FieldError{{Message: err.Error()}}}
	}

	labels := labelsOf(s)
	out := Result{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		label := labels[fe.StructField()]
		if label == "" {
			label = fe.Field()
		}
		out.Errors = append(out.Errors, FieldError{
			Field:   fe.Field(),
			Label:   label,
			Tag:     fe.Tag(),
			Message: message(label, fe),
		})
	}
	return out
}

func labelsOf(s any) map[string]string {
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	labels := map[string]string{}
	if t == nil || t.Kind() != reflect.Struct {
		return labels
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if l := f.Tag.Get("label"); l != "" {
			labels[f.Name] = l
		}
	}
	return labels
}

func message(label string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "email":
		return label + " must be a valid email address."
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, fe.Param())
	case "objectid":
		return label + " is not a valid id."
	case "reqstatus":
		return label + " must be pending, accepted or declined."
	case "usertype":
		return label + " must be student, alumni or admin."
	case "availability":
		return label + " must be available, busy or unavailable."
	default:
		return label + " is invalid."
	}
}

// IsValidEmail reports whether s is a bare address (no display name).
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return instance().Var(s, "email") == nil
}

// IsValidUserType reports whether s names an account type.
func IsValidUserType(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case models.UserTypeStudent, models.UserTypeAlumni, models.UserTypeAdmin:
		return true
	}
	return false
}

// IsValidAvailability reports whether s is a mentor availability value.
func IsValidAvailability(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case models.AvailabilityAvailable, models.AvailabilityBusy, models.AvailabilityUnavailable:
		return true
	}
	return false
}
