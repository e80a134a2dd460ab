// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Collection names.
const (
	Users              = "users"
	StudentProfiles    = "student_profiles"
	AlumniProfiles     = "alumni_profiles"
	MentorshipRequests = "mentorship_requests"
	AuditEvents        = "audit_events"
)

/*
EnsureAll is called from EnsureSchema at startup. Every set is idempotent
and problems are aggregated so one bad collection does not hide another.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	sets := []struct {
		coll   string
		models []mongo.IndexModel
	}{
		{Users, userIndexes()},
		{StudentProfiles, studentIndexes()},
		{AlumniProfiles, alumniIndexes()},
		{MentorshipRequests, requestIndexes()},
		{AuditEvents, auditIndexes()},
	}

	var problems []string
	for _, s := range sets {
		r := reconciler{coll: db.Collection(s.coll), log: log}
		if err := r.ensure(ctx, s.models); err != nil {
			problems = append(problems, s.coll+": "+err.Error())
		}
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* -------------------------------------------------------------------------- */
/* Index sets                                                                  */
/* -------------------------------------------------------------------------- */

func userIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_email"),
		},
		// Admin list: userType filter, then name order.
		{
			Keys: bson.D{
				{Key: "user_type", Value: 1},
				{Key: "full_name_ci", Value: 1},
				{Key: "_id", Value: 1},
			},
			Options: options.Index().SetName("idx_users_type_fullnameci_id"),
		},
		// Overview counts of active accounts.
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "user_type", Value: 1}},
			Options: options.Index().SetName("idx_users_active_type"),
		},
	}
}

func studentIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("idx_students_user"),
		},
	}
}

func alumniIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		// Candidate pool: mentors, in insertion order.
		{
			Keys:    bson.D{{Key: "is_mentor", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("idx_alumni_mentor_id"),
		},
		{
			Keys:    bson.D{{Key: "industry", Value: 1}},
			Options: options.Index().SetName("idx_alumni_industry"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetName("idx_alumni_user"),
		},
	}
}

func requestIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "student_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_requests_student_created"),
		},
		{
			Keys:    bson.D{{Key: "mentor_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_requests_mentor_created"),
		},
		// Status counts for the admin overview.
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_requests_status"),
		},
	}
}

func auditIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_audit_timestamp"),
		},
		{
			Keys:    bson.D{{Key: "request_id", Value: 1}, {Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("idx_audit_request_timestamp"),
		},
		{
			Keys: bson.D{
				{Key: "category", Value: 1},
				{Key: "event_type", Value: 1},
				{Key: "timestamp", Value: -1},
			},
			Options: options.Index().SetName("idx_audit_category_type_timestamp"),
		},
	}
}

/* -------------------------------------------------------------------------- */
/* Reconciling one collection                                                  */
/* -------------------------------------------------------------------------- */

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

type reconciler struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func boolVal(p *bool) bool { return p != nil && *p }

// isDuplicateKeyErr reports E11000 from either a write or a command error.
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}

// isOptionsConflictErr covers servers that refuse an index whose keys
// already exist under another name or with other options.
func isOptionsConflictErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "IndexOptionsConflict")
}

func (r reconciler) existing(ctx context.Context) map[string]existingIndex {
	out := map[string]existingIndex{}
	cur, err := r.coll.Indexes().List(ctx)
	if err != nil {
		return out
	}
	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var idx existingIndex
		if err := cur.Decode(&idx); err != nil {
			r.log.Warn("failed to decode existing index",
				zap.String("collection", r.coll.Name()), zap.Error(err))
			continue
		}
		out[keySig(idx.Key)] = idx
	}
	return out
}

// ensure makes every model exist with its desired name and uniqueness.
// An index with the same keys is reused when it matches, renamed when only
// the name differs and dropped and recreated when uniqueness differs.
func (r reconciler) ensure(ctx context.Context, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		name, unique := "", (*bool)(nil)
		if m.Options != nil {
			if m.Options.Name != nil {
				name = *m.Options.Name
			}
			unique = m.Options.Unique
		}
		sig := keySig(m.Keys.(bson.D))
		start := time.Now()
		fields := []zap.Field{
			zap.String("collection", r.coll.Name()),
			zap.String("name", name),
			zap.String("keys", sig),
			zap.Bool("unique", boolVal(unique)),
		}

		ex, found := r.existing(ctx)[sig]
		switch {
		case found && boolVal(ex.Unique) == boolVal(unique) && (name == "" || ex.Name == name):
			r.log.Debug("reusing existing index", fields...)
			continue
		case found:
			if err := r.replace(ctx, ex.Name, m); err != nil {
				errs = append(errs, r.describe(name, sig, unique, err))
				continue
			}
			r.log.Info("index recreated", append(fields, zap.String("was", ex.Name), zap.Duration("took", time.Since(start)))...)
			continue
		}

		if _, err := r.coll.Indexes().CreateOne(ctx, m); err != nil {
			if !isOptionsConflictErr(err) {
				r.log.Warn("index ensure failed", append(fields, zap.Error(err))...)
				errs = append(errs, r.describe(name, sig, unique, err))
				continue
			}
			// Lost a race or the server saw a match we did not: retry once
			// against a fresh listing.
			if again, ok := r.existing(ctx)[sig]; ok && boolVal(again.Unique) == boolVal(unique) {
				continue
			} else if ok {
				if err := r.replace(ctx, again.Name, m); err != nil {
					errs = append(errs, r.describe(name, sig, unique, err))
				}
				continue
			}
			errs = append(errs, r.describe(name, sig, unique, err))
			continue
		}
		r.log.Info("index ensured", append(fields, zap.Duration("took", time.Since(start)))...)
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (r reconciler) replace(ctx context.Context, old string, m mongo.IndexModel) error {
	if _, err := r.coll.Indexes().DropOne(ctx, old); err != nil {
		return fmt.Errorf("drop %s: %w", old, err)
	}
	_, err := r.coll.Indexes().CreateOne(ctx, m)
	return err
}

func (r reconciler) describe(name, sig string, unique *bool, err error) string {
	if isDuplicateKeyErr(err) && boolVal(unique) {
		msg := fmt.Sprintf("%s(%s): cannot create unique index (duplicates present)", r.coll.Name(), name)
		if r.coll.Name() == Users && strings.Contains(sig, "email:1") {
			msg += `; find them with db.users.aggregate([{ $group: { _id: "$email", n: { $sum: 1 } } }, { $match: { n: { $gt: 1 } } }])`
		}
		return msg
	}
	return fmt.Sprintf("%s(%s): %v", r.coll.Name(), name, err)
}
