package studentstore

import (
	"context"
	"errors"

	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/encodersih/alumni-connect/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("student_profiles")}
}

// GetByID loads a student profile. Unknown ids are apperr not_found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Student, error) {
	var st models.Student
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&st); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Student{}, apperr.NotFound("student", id.Hex())
		}
		return models.Student{}, err
	}
	return st, nil
}
