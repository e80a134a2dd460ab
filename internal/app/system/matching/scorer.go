package matching

import (
	"math"
	"strings"

	"github.com/encodersih/alumni-connect/internal/domain/models"
)

// domainAffinity is the major x industry lookup. Extending it is a product
// decision; keep it a literal table.
var domainAffinity = map[[2]string]float64{
	{"Computer Science", "Technology"}:        20,
	{"Business Administration", "Technology"}: 15,
}

var availabilityBonus = map[string]float64{
	models.AvailabilityAvailable: 10,
	models.AvailabilityBusy:      5,
}

// Score returns the 0-100 compatibility of mentor for student.
func Score(student models.Student, mentor models.AlumniProfile) int {
	return Explain(student, mentor).Total
}

// Explain computes every sub-score and the rounded total.
func Explain(student models.Student, mentor models.AlumniProfile) Breakdown {
	b := Breakdown{
		Category:     categoryScore(student.PreferredMentorCategories, mentor.MentorCategories),
		Skills:       skillScore(student.Interests, mentor.Skills),
		Domain:       domainAffinity[[2]string{student.Major, mentor.Industry}],
		Availability: availabilityBonus[mentor.AvailabilityStatus],
	}
	b.Total = roundHalfUp(b.Category + b.Skills + b.Domain + b.Availability)
	return b
}

// categoryScore is 40 * |preferred ∩ offered| / |preferred|, over distinct
// preferred categories.
func categoryScore(preferred, offered []string) float64 {
	want := distinct(preferred)
	if len(want) == 0 {
		return 0
	}
	have := make(map[string]struct{}, len(offered))
	for _, c := range offered {
		have[c] = struct{}{}
	}
	matched := 0
	for _, c := range want {
		if _, ok := have[c]; ok {
			matched++
		}
	}
	return CategoryWeight * float64(matched) / float64(len(want))
}

// skillScore is 30 * k / p where k counts interests contained (case
// insensitively) in at least one skill. Blank interests never match.
func skillScore(interests, skills []string) float64 {
	if len(interests) == 0 {
		return 0
	}
	lowered := make([]string, len(skills))
	for i, s := range skills {
		lowered[i] = strings.ToLower(s)
	}
	matched := 0
	for _, interest := range interests {
		needle := strings.ToLower(strings.TrimSpace(interest))
		if needle == "" {
			continue
		}
		for _, skill := range lowered {
			if strings.Contains(skill, needle) {
				matched++
				break
			}
		}
	}
	return SkillWeight * float64(matched) / float64(len(interests))
}

func distinct(vals []string) []string {
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// roundHalfUp rounds x to the nearest integer, halves up. The epsilon
// absorbs float error from the proportional terms (e.g. 17.4999999).
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5 + 1e-9))
}
