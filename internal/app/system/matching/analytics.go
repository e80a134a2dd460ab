package matching

import "github.com/encodersih/alumni-connect/internal/domain/models"

// Analyze summarizes pool relative to student. CategoryMatches counts
// mentors sharing at least one category with the student (yes/no per
// mentor, unlike the proportional score). MatchRate is 0 for an empty pool.
func Analyze(student models.Student, pool []models.AlumniProfile) Analytics {
	a := Analytics{TotalMentors: len(pool)}

	preferred := make(map[string]struct{}, len(student.PreferredMentorCategories))
	for _, c := range student.PreferredMentorCategories {
		preferred[c] = struct{}{}
	}

	for _, m := range pool {
		if m.AvailabilityStatus == models.AvailabilityAvailable {
			a.AvailableMentors++
		}
		for _, c := range m.MentorCategories {
			if _, ok := preferred[c]; ok {
				a.CategoryMatches++
				break
			}
		}
	}

	a.MatchRate = Percent(a.CategoryMatches, a.TotalMentors)
	return a
}

// Percent returns round-half-up(part/whole*100), or 0 when whole is 0.
func Percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return roundHalfUp(float64(part) / float64(whole) * 100)
}
