// internal/domain/models/alumni.go
package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mentor availability values.
const (
	AvailabilityAvailable   = "available"
	AvailabilityBusy        = "busy"
	AvailabilityUnavailable = "unavailable"
)

// AlumniProfile is the professional profile of an alumni user. Profiles that
// opt in to mentoring (IsMentor with at least one category) are the mentors
// the matching engine scores.
type AlumniProfile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"user_id"`
	FirstName      string             `bson:"first_name" json:"first_name"`
	LastName       string             `bson:"last_name" json:"last_name"`
	GraduationYear int                `bson:"graduation_year" json:"graduation_year"`
	Degree         string             `bson:"degree" json:"degree"`
	Major          string             `bson:"major" json:"major"`

	CurrentCompany  string `bson:"current_company" json:"current_company"`
	CurrentPosition string `bson:"current_position" json:"current_position"`
	Industry        string `bson:"industry" json:"industry"`
	Location        string `bson:"location" json:"location"`
	Bio             string `bson:"bio" json:"bio"`

	Skills             []string `bson:"skills" json:"skills"`
	IsMentor           bool     `bson:"is_mentor" json:"is_mentor"`
	MentorCategories   []string `bson:"mentor_categories" json:"mentor_categories"`
	AvailabilityStatus string   `bson:"availability_status" json:"availability_status"` // available | busy | unavailable
	ProfileImageURL    string   `bson:"profile_image_url,omitempty" json:"profile_image_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Eligible reports whether the profile may enter a candidate mentor pool.
func (a AlumniProfile) Eligible() bool {
	return a.IsMentor && len(a.MentorCategories) > 0
}

// FullName joins first and last name.
func (a AlumniProfile) FullName() string {
	return joinName(a.FirstName, a.LastName)
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
