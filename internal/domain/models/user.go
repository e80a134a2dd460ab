// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User types.
const (
	UserTypeStudent = "student"
	UserTypeAlumni  = "alumni"
	UserTypeAdmin   = "admin"
)

// User is an account on the platform. Student and alumni profiles hang off
// a user through their UserID.
type User struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email           string             `bson:"email" json:"email"`
	FirstName       string             `bson:"first_name" json:"first_name"`
	LastName        string             `bson:"last_name" json:"last_name"`
	FullNameCI      string             `bson:"full_name_ci" json:"-"`      // lowercase, diacritics-stripped
	UserType        string             `bson:"user_type" json:"user_type"` // student | alumni | admin
	IsActive        bool               `bson:"is_active" json:"is_active"`
	ProfileComplete bool               `bson:"profile_complete" json:"profile_complete"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
	LastLogin *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	return joinName(u.FirstName, u.LastName)
}
