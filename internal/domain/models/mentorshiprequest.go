// internal/domain/models/mentorshiprequest.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MentorshipRequest is a student's request to be mentored by an alumni
// mentor. Status moves pending -> accepted|declined exactly once; see the
// status package for the transition rules.
//
// StudentName and MentorName are denormalized at creation so request lists
// can be searched without joining profiles.
type MentorshipRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID   primitive.ObjectID `bson:"student_id" json:"student_id"`
	MentorID    primitive.ObjectID `bson:"mentor_id" json:"mentor_id"`
	StudentName string             `bson:"student_name" json:"student_name"`
	MentorName  string             `bson:"mentor_name" json:"mentor_name"`
	Category    string             `bson:"category" json:"category"`
	Message     string             `bson:"message" json:"message"`
	Status      string             `bson:"status" json:"status"` // pending | accepted | declined

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
