package search

import (
	"github.com/encodersih/alumni-connect/internal/domain/models"
)

// AlumniSchema searches the alumni directory.
var AlumniSchema = Schema[models.AlumniProfile]{
	Fields: func(a models.AlumniProfile) []string {
		f := []string{a.FirstName, a.LastName, a.CurrentCompany, a.CurrentPosition}
		return append(f, a.Skills...)
	},
	Categories: map[string]func(models.AlumniProfile) string{
		"industry": func(a models.AlumniProfile) string { return a.Industry },
	},
	Flags: map[string]func(models.AlumniProfile) bool{
		"mentorsOnly": func(a models.AlumniProfile) bool { return a.IsMentor },
	},
}

// UserSchema searches platform accounts.
var UserSchema = Schema[models.User]{
	Fields: func(u models.User) []string {
		return []string{u.FirstName, u.LastName, u.Email}
	},
	Categories: map[string]func(models.User) string{
		"userType": func(u models.User) string { return u.UserType },
	},
}

// RequestSchema searches mentorship requests.
var RequestSchema = Schema[models.MentorshipRequest]{
	Fields: func(r models.MentorshipRequest) []string {
		return []string{r.StudentName, r.MentorName, r.Message, r.Category}
	},
	Categories: map[string]func(models.MentorshipRequest) string{
		"status":   func(r models.MentorshipRequest) string { return r.Status },
		"category": func(r models.MentorshipRequest) string { return r.Category },
	},
}
