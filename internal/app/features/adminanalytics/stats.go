package adminanalytics

import (
	"sort"
	"strings"
	"time"

	"github.com/encodersih/alumni-connect/internal/app/system/matching"
	"github.com/encodersih/alumni-connect/internal/app/system/status"
	"github.com/encodersih/alumni-connect/internal/domain/models"
)

type Overview struct {
	TotalUsers       int `json:"total_users"`
	ActiveUsers      int `json:"active_users"`
	TotalStudents    int `json:"total_students"`
	TotalAlumni      int `json:"total_alumni"`
	TotalAdmins      int `json:"total_admins"`
	TotalMentors     int `json:"total_mentors"`
	AvailableMentors int `json:"available_mentors"`
	TotalMentorships int `json:"total_mentorships"` // accepted requests
}

type MentorshipStats struct {
	TotalRequests    int `json:"total_requests"`
	AcceptedRequests int `json:"accepted_requests"`
	PendingRequests  int `json:"pending_requests"`
	DeclinedRequests int `json:"declined_requests"`
	SuccessRate      int `json:"success_rate"` // accepted / total, percent
}

type IndustryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GrowthPoint counts registrations in one calendar month ("2006-01").
type GrowthPoint struct {
	Month    string `json:"month"`
	Students int    `json:"students"`
	Alumni   int    `json:"alumni"`
}

// Report is the admin overview.
type Report struct {
	Overview       Overview        `json:"overview"`
	Mentorship     MentorshipStats `json:"mentorship"`
	TopIndustries  []IndustryCount `json:"top_industries"`
	UserGrowth     []GrowthPoint   `json:"user_growth"`
	RecentActivity []Activity      `json:"recent_activity"`
}

// Summarize builds a Report from collection snapshots. topN bounds
// TopIndustries (zero or less means no bound). UserGrowth covers the months
// calendar months ending with the one containing now, with empty months
// reported as zero.
func Summarize(users []models.User, alumni []models.AlumniProfile, byStatus map[string]int, topN, months int, now time.Time) Report {
	rep := Report{RecentActivity: []Activity{}}

	growth := map[string]*GrowthPoint{}
	for _, u := range users {
		rep.Overview.TotalUsers++
		if u.IsActive {
			rep.Overview.ActiveUsers++
		}
		switch u.UserType {
		case models.UserTypeStudent:
			rep.Overview.TotalStudents++
		case models.UserTypeAlumni:
			rep.Overview.TotalAlumni++
		case models.UserTypeAdmin:
			rep.Overview.TotalAdmins++
			continue
		default:
			continue
		}
		if u.CreatedAt.IsZero() {
			continue
		}
		key := u.CreatedAt.UTC().Format("2006-01")
		p, ok := growth[key]
		if !ok {
			p = &GrowthPoint{Month: key}
			growth[key] = p
		}
		if u.UserType == models.UserTypeStudent {
			p.Students++
		} else {
			p.Alumni++
		}
	}

	industries := map[string]int{}
	for _, a := range alumni {
		if a.Eligible() {
			rep.Overview.TotalMentors++
			if a.AvailabilityStatus == models.AvailabilityAvailable {
				rep.Overview.AvailableMentors++
			}
		}
		if name := strings.TrimSpace(a.Industry); name != "" {
			industries[name]++
		}
	}

	m := &rep.Mentorship
	m.AcceptedRequests = byStatus[status.Accepted]
	m.PendingRequests = byStatus[status.Pending]
	m.DeclinedRequests = byStatus[status.Declined]
	m.TotalRequests = m.AcceptedRequests + m.PendingRequests + m.DeclinedRequests
	m.SuccessRate = matching.Percent(m.AcceptedRequests, m.TotalRequests)
	rep.Overview.TotalMentorships = m.AcceptedRequests

	rep.TopIndustries = topIndustries(industries, topN)
	rep.UserGrowth = recentGrowth(growth, months, now)
	return rep
}

// topIndustries orders by count descending, then name.
func topIndustries(counts map[string]int, n int) []IndustryCount {
	out := make([]IndustryCount, 0, len(counts))
	for name, c := range counts {
		out = append(out, IndustryCount{Name: name, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// recentGrowth returns one point per calendar month for the n months ending
// with now's month, oldest first.
func recentGrowth(growth map[string]*GrowthPoint, n int, now time.Time) []GrowthPoint {
	if n <= 0 {
		return []GrowthPoint{}
	}
	out := make([]GrowthPoint, n)
	first := time.Date(now.UTC().Year(), now.UTC().Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)
	for i := range out {
		key := first.AddDate(0, i, 0).Format("2006-01")
		if p, ok := growth[key]; ok {
			out[i] = *p
		} else {
			out[i] = GrowthPoint{Month: key}
		}
	}
	return out
}
