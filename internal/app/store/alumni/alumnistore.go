package alumnistore

import (
	"context"
	"errors"

	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mentorFilter selects profiles that may be scored: mentors with at least
// one category.
var mentorFilter = bson.M{
	"is_mentor":           true,
	"mentor_categories.0": bson.M{"$exists": true},
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("alumni_profiles")}
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.AlumniProfile, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.AlumniProfile{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns the whole directory in insertion order.
func (s *Store) List(ctx context.Context) ([]models.AlumniProfile, error) {
	return s.find(ctx, bson.M{})
}

// ListMentors returns the candidate mentor pool in insertion order.
func (s *Store) ListMentors(ctx context.Context) ([]models.AlumniProfile, error) {
	return s.find(ctx, mentorFilter)
}

// GetByID loads an alumni profile. Unknown ids are apperr not_found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.AlumniProfile, error) {
	var a models.AlumniProfile
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.AlumniProfile{}, apperr.NotFound("mentor", id.Hex())
		}
		return models.AlumniProfile{}, err
	}
	return a, nil
}
