package matching

import (
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sub-score weights.
const (
	CategoryWeight     = 40.0
	SkillWeight        = 30.0
	DomainWeight       = 20.0
	AvailabilityWeight = 10.0
)

// Breakdown is the per-factor contribution behind a score.
type Breakdown struct {
	Category     float64 `json:"category"`
	Skills       float64 `json:"skills"`
	Domain       float64 `json:"domain"`
	Availability float64 `json:"availability"`
	Total        int     `json:"total"`
}

// MatchResult pairs a mentor with its score for one student. It is
// recomputed on every request and never stored.
type MatchResult struct {
	StudentID primitive.ObjectID   `json:"student_id"`
	MentorID  primitive.ObjectID   `json:"mentor_id"`
	Mentor    models.AlumniProfile `json:"mentor"`
	Score     int                  `json:"match_score"`
	Breakdown Breakdown            `json:"breakdown"`
}

// Criteria echoes the student attributes the ranking was computed from.
type Criteria struct {
	Categories  []string `json:"categories"`
	Interests   []string `json:"interests"`
	CareerGoals string   `json:"career_goals"`
}

// Recommendations is the ranked output of Rank.
type Recommendations struct {
	Results  []MatchResult `json:"recommendations"`
	Criteria Criteria      `json:"matching_criteria"`
}

// Analytics summarizes a mentor pool relative to one student.
type Analytics struct {
	TotalMentors     int `json:"total_mentors"`
	AvailableMentors int `json:"available_mentors"`
	CategoryMatches  int `json:"category_matches"`
	MatchRate        int `json:"match_rate"`
}
