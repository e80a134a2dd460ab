package matching

import (
	"sort"

	"github.com/encodersih/alumni-connect/internal/domain/models"
)

// Rank scores every mentor in pool and orders the results by score,
// highest first. Equal scores keep their pool order. The pool is not
// filtered by score: a zero-score mentor is still returned, last.
func Rank(student models.Student, pool []models.AlumniProfile) Recommendations {
	results := make([]MatchResult, 0, len(pool))
	for _, m := range pool {
		b := Explain(student, m)
		results = append(results, MatchResult{
			StudentID: student.ID,
			MentorID:  m.ID,
			Mentor:    m,
			Score:     b.Total,
			Breakdown: b,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return Recommendations{
		Results:  results,
		Criteria: CriteriaFor(student),
	}
}

// CriteriaFor copies the student attributes that drive matching.
func CriteriaFor(student models.Student) Criteria {
	return Criteria{
		Categories:  append([]string{}, student.PreferredMentorCategories...),
		Interests:   append([]string{}, student.Interests...),
		CareerGoals: student.CareerGoals,
	}
}

// CandidatePool keeps the profiles that may be scored (mentors with at least
// one category), preserving order. The input slice is not modified.
func CandidatePool(profiles []models.AlumniProfile) []models.AlumniProfile {
	out := make([]models.AlumniProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.Eligible() {
			out = append(out, p)
		}
	}
	return out
}
