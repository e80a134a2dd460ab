package requeststore

import (
	"context"
	"errors"
	"time"

	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/encodersih/alumni-connect/internal/app/system/status"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("mentorship_requests")}
}

var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.MentorshipRequest, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.MentorshipRequest{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns every request, newest first.
func (s *Store) List(ctx context.Context) ([]models.MentorshipRequest, error) {
	return s.find(ctx, bson.M{})
}

// ListByStudent returns the requests a student sent, newest first.
func (s *Store) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.MentorshipRequest, error) {
	return s.find(ctx, bson.M{"student_id": studentID})
}

// ListByMentor returns the requests a mentor received, newest first.
func (s *Store) ListByMentor(ctx context.Context, mentorID primitive.ObjectID) ([]models.MentorshipRequest, error) {
	return s.find(ctx, bson.M{"mentor_id": mentorID})
}

// GetByID loads a request. Unknown ids are apperr not_found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.MentorshipRequest, error) {
	var r models.MentorshipRequest
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.MentorshipRequest{}, apperr.NotFound("mentorship request", id.Hex())
		}
		return models.MentorshipRequest{}, err
	}
	return r, nil
}

// Create inserts r as a new pending request. Any Status on r is ignored.
func (s *Store) Create(ctx context.Context, r models.MentorshipRequest) (models.MentorshipRequest, error) {
	r.ID = primitive.NewObjectID()
	r.Status = status.Pending
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.MentorshipRequest{}, err
	}
	return r, nil
}

// UpdateStatus moves a pending request to to and returns the updated
// record. The write is conditional on the stored status still being
// pending, so of two concurrent decisions exactly one is applied; the other
// gets invalid_state_transition.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, to string) (models.MentorshipRequest, error) {
	to = status.Normalize(to)
	if err := status.Transition(status.Pending, to); err != nil {
		if apperr.KindOf(err) == apperr.KindInvalidInput {
			return models.MentorshipRequest{}, err
		}
		// pending -> pending: report it against the stored status.
		cur, gerr := s.GetByID(ctx, id)
		if gerr != nil {
			return models.MentorshipRequest{}, gerr
		}
		return models.MentorshipRequest{}, apperr.InvalidTransition(cur.Status, to)
	}

	var updated models.MentorshipRequest
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": status.Pending},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.MentorshipRequest{}, err
	}

	cur, gerr := s.GetByID(ctx, id)
	if gerr != nil {
		return models.MentorshipRequest{}, gerr
	}
	if terr := status.Transition(cur.Status, to); terr != nil {
		return models.MentorshipRequest{}, terr
	}
	return models.MentorshipRequest{}, apperr.InvalidTransition(cur.Status, to)
}

// CountByStatus returns the number of requests per status.
func (s *Store) CountByStatus(ctx context.Context) (map[string]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "n", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		N      int    `bson:"n"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Status] = r.N
	}
	return out, nil
}
