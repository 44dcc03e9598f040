// Package hourqueries holds the aggregation that joins volunteer-hour
// records with organization and volunteer display names for listings.
//
// The joins are left joins: a record whose organization or user no longer
// resolves still comes back, with the display name empty. Deleting an
// organization does not cascade to hour records.
package hourqueries

import (
	"context"

	"github.com/Sajid788/Volunteer-Hours-Tracker/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnrichedHour is a volunteer-hour record with denormalized display names.
// The names are a presentation join, not part of the stored record.
type EnrichedHour struct {
	models.VolunteerHour `bson:",inline"`

	OrganizationName string `bson:"organization_name" json:"organization_name"`
	UserName         string `bson:"user_name" json:"user_name"`
}

// ListEnriched returns hour records matching filter, newest first, each
// joined with its organization name and volunteer name.
//
// Callers build the filter per role:
//   - admin: bson.M{}
//   - volunteer: bson.M{"user_id": actorID}
//   - organization: bson.M{"organization_id": bson.M{"$in": ownedOrgIDs}}
func ListEnriched(ctx context.Context, db *mongo.Database, filter bson.M) ([]EnrichedHour, error) {
	pipe := append(mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}, enrichStages()...)

	cur, err := db.Collection("volunteer_hours").Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	hours := []EnrichedHour{}
	if err := cur.All(ctx, &hours); err != nil {
		return nil, err
	}
	return hours, nil
}

// GetEnriched returns one record by ID with display names joined, or
// mongo.ErrNoDocuments if absent.
func GetEnriched(ctx context.Context, db *mongo.Database, id primitive.ObjectID) (EnrichedHour, error) {
	pipe := append(mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
		bson.D{{Key: "$limit", Value: 1}},
	}, enrichStages()...)

	cur, err := db.Collection("volunteer_hours").Aggregate(ctx, pipe)
	if err != nil {
		return EnrichedHour{}, err
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return EnrichedHour{}, err
		}
		return EnrichedHour{}, mongo.ErrNoDocuments
	}
	var h EnrichedHour
	if err := cur.Decode(&h); err != nil {
		return EnrichedHour{}, err
	}
	return h, nil
}

// enrichStages joins organizations and users and projects their names.
func enrichStages() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "organizations",
			"localField":   "organization_id",
			"foreignField": "_id",
			"as":           "org",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$org",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "volunteer",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$volunteer",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"organization_name": bson.M{"$ifNull": []any{"$org.name", ""}},
			"user_name":         bson.M{"$ifNull": []any{"$volunteer.name", ""}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"org": 0, "volunteer": 0}}},
	}
}
