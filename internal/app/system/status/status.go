// Package status holds the mentorship request status values and the rules
// for moving between them.
//
//	pending ──► accepted
//	   └──────► declined
//
// accepted and declined are terminal.
package status

import (
	"strings"

	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
)

const (
	Pending  = "pending"
	Accepted = "accepted"
	Declined = "declined"
)

// IsValid reports whether s is one of the known status values.
func IsValid(s string) bool {
	switch s {
	case Pending, Accepted, Declined:
		return true
	}
	return false
}

// Normalize lowercases and trims a status value read from a request.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Transition checks a requested change. An unknown target is invalid input;
// anything other than pending -> accepted|declined is an invalid transition.
func Transition(from, to string) error {
	if !IsValid(to) {
		return apperr.InvalidInput("status", `status must be "pending"|"accepted"|"declined"`)
	}
	if from != Pending || to == Pending {
		return apperr.InvalidTransition(from, to)
	}
	return nil
}
