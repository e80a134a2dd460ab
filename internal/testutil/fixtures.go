package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures inserts test records directly into the collections, bypassing
// the stores under test.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures for db.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("insert into %s: %v", coll, err)
	}
}

// CreateUser inserts an active user of the given type.
func (f *Fixtures) CreateUser(ctx context.Context, first, last, email, userType string) models.User {
	f.t.Helper()
	now := time.Now().UTC()
	u := models.User{
		ID:         primitive.NewObjectID(),
		Email:      email,
		FirstName:  first,
		LastName:   last,
		FullNameCI: text.Fold(first + " " + last),
		UserType:   userType,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	f.insert(ctx, "users", u)
	return u
}

// CreateStudent inserts s, filling ID and timestamps when unset.
func (f *Fixtures) CreateStudent(ctx context.Context, s models.Student) models.Student {
	f.t.Helper()
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	f.insert(ctx, "student_profiles", s)
	return s
}

// CreateAlumni inserts a, filling ID and timestamps when unset.
func (f *Fixtures) CreateAlumni(ctx context.Context, a models.AlumniProfile) models.AlumniProfile {
	f.t.Helper()
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	f.insert(ctx, "alumni_profiles", a)
	return a
}

// CreateRequest inserts a mentorship request from student to mentor.
func (f *Fixtures) CreateRequest(ctx context.Context, student models.Student, mentor models.AlumniProfile, category, status string) models.MentorshipRequest {
	f.t.Helper()
	now := time.Now().UTC()
	r := models.MentorshipRequest{
		ID:          primitive.NewObjectID(),
		StudentID:   student.ID,
		MentorID:    mentor.ID,
		StudentName: student.FullName(),
		MentorName:  mentor.FullName(),
		Category:    category,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.insert(ctx, "mentorship_requests", r)
	return r
}

// Directory is the small sample data set most store tests start from.
type Directory struct {
	John    models.Student
	Sarah   models.AlumniProfile
	Michael models.AlumniProfile
	Emily   models.AlumniProfile
	Retired models.AlumniProfile // not a mentor
}

// SeedDirectory inserts one computer science student, three mentors and
// one alumni profile that does not mentor.
func (f *Fixtures) SeedDirectory(ctx context.Context) Directory {
	f.t.Helper()
	return Directory{
		John: f.CreateStudent(ctx, models.Student{
			FirstName:                 "John",
			LastName:                  "Student",
			Major:                     "Computer Science",
			CurrentYear:               3,
			Interests:                 []string{"Web Development", "AI/ML", "Startups"},
			PreferredMentorCategories: []string{"Career Development", "Technical Skills"},
		}),
		Sarah: f.CreateAlumni(ctx, models.AlumniProfile{
			FirstName: "Sarah", LastName: "Alumni",
			CurrentCompany: "Google", CurrentPosition: "Senior Software Engineer", Industry: "Technology",
			Skills: []string{"JavaScript", "Python", "React", "Node.js"}, IsMentor: true,
			MentorCategories:   []string{"Career Development", "Technical Skills"},
			AvailabilityStatus: models.AvailabilityAvailable,
		}),
		Michael: f.CreateAlumni(ctx, models.AlumniProfile{
			FirstName: "Michael", LastName: "Johnson",
			CurrentCompany: "Microsoft", CurrentPosition: "Product Manager", Industry: "Technology",
			Skills: []string{"Product Management", "Strategy", "Leadership"}, IsMentor: true,
			MentorCategories:   []string{"Career Development", "Leadership"},
			AvailabilityStatus: models.AvailabilityAvailable,
		}),
		Emily: f.CreateAlumni(ctx, models.AlumniProfile{
			FirstName: "Emily", LastName: "Davis",
			CurrentCompany: "Adobe", CurrentPosition: "Marketing Director", Industry: "Marketing",
			Skills: []string{"Digital Marketing", "Brand Strategy"}, IsMentor: true,
			MentorCategories:   []string{"Career Development", "Marketing"},
			AvailabilityStatus: models.AvailabilityBusy,
		}),
		Retired: f.CreateAlumni(ctx, models.AlumniProfile{
			FirstName: "Pat", LastName: "Retired",
			Industry: "Finance", IsMentor: false,
			AvailabilityStatus: models.AvailabilityUnavailable,
		}),
	}
}
