package adminanalytics_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/encodersih/alumni-connect/internal/app/features/adminanalytics"
	"github.com/encodersih/alumni-connect/internal/app/store/audit"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"github.com/encodersih/alumni-connect/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeUsers []models.User

func (f fakeUsers) List(context.Context) ([]models.User, error) { return f, nil }

type fakeAlumni []models.AlumniProfile

func (f fakeAlumni) List(context.Context) ([]models.AlumniProfile, error) { return f, nil }

type fakeCounts struct {
	counts map[string]int
	err    error
}

func (f fakeCounts) CountByStatus(context.Context) (map[string]int, error) { return f.counts, f.err }

type fakeActivity struct {
	events  []audit.Event
	err     error
	filters []audit.QueryFilter
}

func (f *fakeActivity) matching(filter audit.QueryFilter) []audit.Event {
	out := []audit.Event{}
	for _, e := range f.events {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if filter.EventType != "" && e.EventType != filter.EventType {
			continue
		}
		if filter.RequestID != nil && (e.RequestID == nil || *e.RequestID != *filter.RequestID) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (f *fakeActivity) Query(_ context.Context, filter audit.QueryFilter) ([]audit.Event, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	out := f.matching(filter)
	if int(filter.Offset) >= len(out) {
		return []audit.Event{}, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && int(filter.Limit) < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeActivity) Count(_ context.Context, filter audit.QueryFilter) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.matching(filter))), nil
}

func sampleEvents() (*fakeActivity, primitive.ObjectID) {
	reqID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	now := time.Now().UTC()
	return &fakeActivity{events: []audit.Event{
		{Category: audit.CategoryMentorship, EventType: audit.EventRequestStatusChanged, RequestID: &reqID, Success: true, Timestamp: now,
			Details: map[string]string{"from": "pending", "to": "accepted"}},
		{Category: audit.CategoryAdmin, EventType: audit.EventUserCreated, UserID: &userID, Success: true, Timestamp: now.Add(-time.Minute)},
		{Category: audit.CategoryMentorship, EventType: audit.EventRequestCreated, RequestID: &reqID, Success: true, Timestamp: now.Add(-time.Hour)},
	}}, reqID
}

func newHandler(activity adminanalytics.ActivityLog) *adminanalytics.Handler {
	users := fakeUsers{
		{UserType: models.UserTypeStudent, IsActive: true},
		{UserType: models.UserTypeAlumni, IsActive: true},
		{UserType: models.UserTypeAlumni, IsActive: false},
	}
	alumni := fakeAlumni{
		{Industry: "Technology", IsMentor: true, MentorCategories: []string{"Career Development"}, AvailabilityStatus: models.AvailabilityAvailable},
		{Industry: "Marketing"},
	}
	counts := fakeCounts{counts: map[string]int{"accepted": 1, "declined": 1}}
	return adminanalytics.NewHandler(users, alumni, counts, activity, zap.NewNop())
}

func serve(h *adminanalytics.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	adminanalytics.Routes(h).ServeHTTP(rec, testutil.NewRequest("GET", target))
	return rec
}

func TestServeOverview(t *testing.T) {
	activity, _ := sampleEvents()
	h := newHandler(activity)
	h.Now = func() time.Time { return time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC) }

	rec := serve(h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
	}
	var rep adminanalytics.Report
	testutil.DecodeJSON(t, rec, &rep)

	if rep.Overview.TotalUsers != 3 || rep.Overview.ActiveUsers != 2 || rep.Overview.TotalMentors != 1 {
		t.Errorf("overview = %+v", rep.Overview)
	}
	if rep.Mentorship.TotalRequests != 2 || rep.Mentorship.SuccessRate != 50 {
		t.Errorf("mentorship = %+v", rep.Mentorship)
	}
	if len(rep.TopIndustries) != 2 {
		t.Errorf("top industries = %+v", rep.TopIndustries)
	}
	if len(rep.RecentActivity) != 3 || rep.RecentActivity[0].Description != "Mentorship request decided" {
		t.Errorf("recent activity = %+v", rep.RecentActivity)
	}
	if len(rep.UserGrowth) != 6 || rep.UserGrowth[0].Month != "2024-10" || rep.UserGrowth[5].Month != "2025-03" {
		t.Errorf("user growth = %+v, want 2024-10 through 2025-03", rep.UserGrowth)
	}
	if got := activity.filters[0].Limit; got != 10 {
		t.Errorf("recent activity limit = %d, want 10", got)
	}
}

func TestServeOverview_ActivityFailureIsNotFatal(t *testing.T) {
	h := newHandler(&fakeActivity{err: errors.New("audit down")})

	rec := serve(h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var rep adminanalytics.Report
	testutil.DecodeJSON(t, rec, &rep)
	if rep.RecentActivity == nil || len(rep.RecentActivity) != 0 {
		t.Errorf("recent activity = %+v, want []", rep.RecentActivity)
	}
}

func TestServeOverview_CountFailure(t *testing.T) {
	h := newHandler(nil)
	h.Requests = fakeCounts{err: errors.New("aggregate failed")}

	if rec := serve(h, "/"); rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

type activityBody struct {
	Activity   []adminanalytics.Activity `json:"activity"`
	Total      int                       `json:"total"`
	TotalPages int                       `json:"total_pages"`
}

func TestServeActivity(t *testing.T) {
	activity, reqID := sampleEvents()
	h := newHandler(activity)

	tests := []struct {
		name      string
		target    string
		wantTotal int
		wantItems int
	}{
		{"all", "/activity", 3, 3},
		{"category", "/activity?category=Mentorship", 2, 2},
		{"event type", "/activity?eventType=user_created", 1, 1},
		{"request history", "/activity?requestId=" + reqID.Hex(), 2, 2},
		{"paged", "/activity?limit=2&page=2", 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
			}
			var body activityBody
			testutil.DecodeJSON(t, rec, &body)
			if body.Total != tt.wantTotal || len(body.Activity) != tt.wantItems {
				t.Errorf("total/items = %d/%d, want %d/%d", body.Total, len(body.Activity), tt.wantTotal, tt.wantItems)
			}
		})
	}
}

func TestServeActivity_Errors(t *testing.T) {
	activity, _ := sampleEvents()
	h := newHandler(activity)

	for _, target := range []string{"/activity?requestId=zz", "/activity?page=0"} {
		if rec := serve(h, target); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestServeActivity_NoLog(t *testing.T) {
	h := newHandler(nil)

	rec := serve(h, "/activity")
	var body activityBody
	testutil.DecodeJSON(t, rec, &body)
	if rec.Code != http.StatusOK || body.Total != 0 || body.Activity == nil {
		t.Errorf("status %d body %+v", rec.Code, body)
	}
}
