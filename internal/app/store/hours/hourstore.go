// internal/app/store/hours/hourstore.go
package hourstore

import (
	"context"
	"time"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the volunteer_hours collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("volunteer_hours")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.VolunteerHour, error) {
	var h models.VolunteerHour
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&h); err != nil {
		return models.VolunteerHour{}, err
	}
	return h, nil
}

// Create inserts a new record. ID, timestamps, and a zero-date default are
// stamped here; the caller has already forced user/status per policy.
func (s *Store) Create(ctx context.Context, h models.VolunteerHour) (models.VolunteerHour, error) {
	now := time.Now().UTC()
	h.ID = primitive.NewObjectID()
	if h.Date.IsZero() {
		h.Date = now
	}
	h.CreatedAt = now
	h.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, h); err != nil {
		return models.VolunteerHour{}, err
	}
	return h, nil
}

// ApplyUpdate performs the single atomic $set/$unset for an update and
// returns the post-update document. set must not be empty; unset may be.
// Returns mongo.ErrNoDocuments if the record vanished between fetch and
// update (last-write-wins, no optimistic versioning).
func (s *Store) ApplyUpdate(ctx context.Context, id primitive.ObjectID, set bson.M, unset []string) (models.VolunteerHour, error) {
	set["updated_at"] = time.Now().UTC()
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		u := bson.M{}
		for _, f := range unset {
			u[f] = ""
		}
		update["$unset"] = u
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var h models.VolunteerHour
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&h); err != nil {
		return models.VolunteerHour{}, err
	}
	return h, nil
}

// Delete removes a record by ID. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountByOrg returns the number of hour records logged against an organization.
func (s *Store) CountByOrg(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"organization_id": orgID})
}
