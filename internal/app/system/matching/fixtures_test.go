package matching

import (
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func csStudent() models.Student {
	return models.Student{
		ID:                        primitive.NewObjectID(),
		FirstName:                 "John",
		LastName:                  "Student",
		Major:                     "Computer Science",
		Interests:                 []string{"Web Development", "AI/ML", "Startups"},
		CareerGoals:               "Become a full-stack developer at a tech startup",
		PreferredMentorCategories: []string{"Career Development", "Technical Skills"},
	}
}

func businessStudent() models.Student {
	return models.Student{
		ID:                        primitive.NewObjectID(),
		FirstName:                 "Alex",
		LastName:                  "Wilson",
		Major:                     "Business Administration",
		Interests:                 []string{"Entrepreneurship", "Finance", "Consulting"},
		CareerGoals:               "Start my own business or work in management consulting",
		PreferredMentorCategories: []string{"Career Development", "Leadership", "Entrepreneurship"},
	}
}

func sarah() models.AlumniProfile {
	return models.AlumniProfile{
		ID:                 primitive.NewObjectID(),
		FirstName:          "Sarah",
		LastName:           "Alumni",
		CurrentCompany:     "Google",
		CurrentPosition:    "Senior Software Engineer",
		Industry:           "Technology",
		Skills:             []string{"JavaScript", "Python", "React", "Node.js"},
		IsMentor:           true,
		MentorCategories:   []string{"Career Development", "Technical Skills"},
		AvailabilityStatus: models.AvailabilityAvailable,
	}
}

func michael() models.AlumniProfile {
	return models.AlumniProfile{
		ID:                 primitive.NewObjectID(),
		FirstName:          "Michael",
		LastName:           "Johnson",
		CurrentCompany:     "Microsoft",
		CurrentPosition:    "Product Manager",
		Industry:           "Technology",
		Skills:             []string{"Product Management", "Strategy", "Leadership"},
		IsMentor:           true,
		MentorCategories:   []string{"Career Development", "Leadership"},
		AvailabilityStatus: models.AvailabilityAvailable,
	}
}

func emily() models.AlumniProfile {
	return models.AlumniProfile{
		ID:                 primitive.NewObjectID(),
		FirstName:          "Emily",
		LastName:           "Davis",
		CurrentCompany:     "Adobe",
		CurrentPosition:    "Marketing Director",
		Industry:           "Marketing",
		Skills:             []string{"Digital Marketing", "Brand Strategy", "Analytics"},
		IsMentor:           true,
		MentorCategories:   []string{"Career Development", "Marketing"},
		AvailabilityStatus: models.AvailabilityBusy,
	}
}
