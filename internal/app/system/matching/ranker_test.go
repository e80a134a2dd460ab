package matching

import (
	"testing"

	"github.com/encodersih/alumni-connect/internal/domain/models"
)

func TestRank_OrdersByScore(t *testing.T) {
	pool := []models.AlumniProfile{emily(), michael(), sarah()}

	got := Rank(csStudent(), pool)

	if len(got.Results) != len(pool) {
		t.Fatalf("len(Results) = %d, want %d", len(got.Results), len(pool))
	}
	wantNames := []string{"Sarah", "Michael", "Emily"}
	wantScores := []int{70, 50, 25}
	for i, r := range got.Results {
		if r.Mentor.FirstName != wantNames[i] || r.Score != wantScores[i] {
			t.Errorf("Results[%d] = %s/%d, want %s/%d", i, r.Mentor.FirstName, r.Score, wantNames[i], wantScores[i])
		}
		if r.MentorID != r.Mentor.ID {
			t.Errorf("Results[%d].MentorID does not match mentor", i)
		}
		if r.Breakdown.Total != r.Score {
			t.Errorf("Results[%d] breakdown total %d != score %d", i, r.Breakdown.Total, r.Score)
		}
	}
}

func TestRank_StableOnTies(t *testing.T) {
	a, b, c := sarah(), sarah(), sarah()
	a.FirstName, b.FirstName, c.FirstName = "A", "B", "C"
	low := emily()

	got := Rank(csStudent(), []models.AlumniProfile{a, low, b, c})

	want := []string{"A", "B", "C", "Emily"}
	for i, r := range got.Results {
		if r.Mentor.FirstName != want[i] {
			t.Errorf("Results[%d] = %s, want %s", i, r.Mentor.FirstName, want[i])
		}
	}
}

func TestRank_KeepsZeroScores(t *testing.T) {
	zero := models.AlumniProfile{FirstName: "Zero", AvailabilityStatus: models.AvailabilityUnavailable}

	got := Rank(csStudent(), []models.AlumniProfile{zero, sarah()})

	if len(got.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(got.Results))
	}
	last := got.Results[1]
	if last.Mentor.FirstName != "Zero" || last.Score != 0 {
		t.Errorf("last result = %s/%d, want Zero/0", last.Mentor.FirstName, last.Score)
	}
}

func TestRank_EmptyPool(t *testing.T) {
	got := Rank(csStudent(), nil)
	if got.Results == nil {
		t.Fatal("Results should be an empty slice, not nil")
	}
	if len(got.Results) != 0 {
		t.Errorf("len(Results) = %d, want 0", len(got.Results))
	}
}

func TestRank_Criteria(t *testing.T) {
	s := csStudent()
	got := Rank(s, []models.AlumniProfile{sarah()})

	if got.Criteria.CareerGoals != s.CareerGoals {
		t.Errorf("CareerGoals = %q, want %q", got.Criteria.CareerGoals, s.CareerGoals)
	}
	if len(got.Criteria.Categories) != 2 || len(got.Criteria.Interests) != 3 {
		t.Errorf("Criteria = %+v", got.Criteria)
	}

	// The echoed criteria must not alias the student's slices.
	got.Criteria.Interests[0] = "changed"
	if s.Interests[0] == "changed" {
		t.Error("Criteria.Interests aliases the student's interests")
	}
}

func TestRank_DoesNotReorderPool(t *testing.T) {
	pool := []models.AlumniProfile{emily(), sarah()}
	Rank(csStudent(), pool)
	if pool[0].FirstName != "Emily" || pool[1].FirstName != "Sarah" {
		t.Error("Rank reordered the input pool")
	}
}

func TestCandidatePool(t *testing.T) {
	notMentor := michael()
	notMentor.IsMentor = false
	noCategories := emily()
	noCategories.MentorCategories = nil

	got := CandidatePool([]models.AlumniProfile{notMentor, sarah(), noCategories, michael()})

	if len(got) != 2 {
		t.Fatalf("len(CandidatePool) = %d, want 2", len(got))
	}
	if got[0].FirstName != "Sarah" || got[1].FirstName != "Michael" {
		t.Errorf("CandidatePool order = %s, %s", got[0].FirstName, got[1].FirstName)
	}
}
