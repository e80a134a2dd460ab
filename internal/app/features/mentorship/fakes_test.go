package mentorship_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/encodersih/alumni-connect/internal/app/system/status"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errBoom = errors.New("boom")

type fakeStudents map[primitive.ObjectID]models.Student

func (f fakeStudents) GetByID(_ context.Context, id primitive.ObjectID) (models.Student, error) {
	s, ok := f[id]
	if !ok {
		return models.Student{}, apperr.NotFound("student", id.Hex())
	}
	return s, nil
}

type fakeMentors struct {
	profiles []models.AlumniProfile
	err      error
}

func (f *fakeMentors) GetByID(_ context.Context, id primitive.ObjectID) (models.AlumniProfile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return models.AlumniProfile{}, apperr.NotFound("mentor", id.Hex())
}

// ListMentors returns every profile, eligible or not, so tests can check
// the handler filters the pool itself.
func (f *fakeMentors) ListMentors(context.Context) ([]models.AlumniProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.AlumniProfile(nil), f.profiles...), nil
}

type fakeRequests struct {
	mu   sync.Mutex
	byID map[primitive.ObjectID]models.MentorshipRequest
	all  []primitive.ObjectID
}

func newFakeRequests(rs ...models.MentorshipRequest) *fakeRequests {
	f := &fakeRequests{byID: map[primitive.ObjectID]models.MentorshipRequest{}}
	for _, r := range rs {
		f.byID[r.ID] = r
		f.all = append(f.all, r.ID)
	}
	return f
}

func (f *fakeRequests) filter(keep func(models.MentorshipRequest) bool) []models.MentorshipRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.MentorshipRequest{}
	for _, id := range f.all {
		if r := f.byID[id]; keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeRequests) List(context.Context) ([]models.MentorshipRequest, error) {
	return f.filter(func(models.MentorshipRequest) bool { return true }), nil
}

func (f *fakeRequests) ListByStudent(_ context.Context, id primitive.ObjectID) ([]models.MentorshipRequest, error) {
	return f.filter(func(r models.MentorshipRequest) bool { return r.StudentID == id }), nil
}

func (f *fakeRequests) ListByMentor(_ context.Context, id primitive.ObjectID) ([]models.MentorshipRequest, error) {
	return f.filter(func(r models.MentorshipRequest) bool { return r.MentorID == id }), nil
}

func (f *fakeRequests) Create(_ context.Context, r models.MentorshipRequest) (models.MentorshipRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = primitive.NewObjectID()
	r.Status = status.Pending
	r.CreatedAt = time.Now().UTC()
	r.UpdatedAt = r.CreatedAt
	f.byID[r.ID] = r
	f.all = append(f.all, r.ID)
	return r, nil
}

func (f *fakeRequests) UpdateStatus(_ context.Context, id primitive.ObjectID, to string) (models.MentorshipRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[id]
	if !ok {
		return models.MentorshipRequest{}, apperr.NotFound("mentorship request", id.Hex())
	}
	if err := status.Transition(r.Status, to); err != nil {
		return models.MentorshipRequest{}, err
	}
	r.Status = to
	f.byID[id] = r
	return r, nil
}

// recorder counts metric calls.
type recorder struct {
	mu          sync.Mutex
	matching    map[string]int
	scores      []int
	lists       map[string]int
	transitions map[string]int
}

func newRecorder() *recorder {
	return &recorder{matching: map[string]int{}, lists: map[string]int{}, transitions: map[string]int{}}
}

func (r *recorder) MatchingRequest(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matching[kind]++
}

func (r *recorder) MatchScores(s []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores = append(r.scores, s...)
}

func (r *recorder) ListQuery(collection string, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[collection]++
}

func (r *recorder) Transition(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions[outcome]++
}
