// internal/domain/models/student.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is the mentee profile of a student user.
//
// NOTE:
//   - Interests keep their declared order; PreferredMentorCategories is a set
//     (duplicates are removed when the profile is written).
//   - CareerGoals is descriptive only and never feeds the match score.
type Student struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user_id" json:"user_id"`
	FirstName   string             `bson:"first_name" json:"first_name"`
	LastName    string             `bson:"last_name" json:"last_name"`
	Major       string             `bson:"major" json:"major"`
	CurrentYear int                `bson:"current_year" json:"current_year"`

	Interests                 []string `bson:"interests" json:"interests"`
	CareerGoals               string   `bson:"career_goals" json:"career_goals"`
	PreferredMentorCategories []string `bson:"preferred_mentor_categories" json:"preferred_mentor_categories"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName joins first and last name.
func (s Student) FullName() string {
	return joinName(s.FirstName, s.LastName)
}
