package mentorship

import (
	"strings"

	"github.com/encodersih/alumni-connect/internal/app/system/apperr"
	"github.com/encodersih/alumni-connect/internal/app/system/matching"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseID reads a required hex ObjectID from a query parameter or body field.
func parseID(field, raw string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, apperr.InvalidInput(field, field+" is required")
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.InvalidInput(field, field+" is not a valid id")
	}
	return id, nil
}

func scoresOf(results []matching.MatchResult) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.Score
	}
	return out
}
