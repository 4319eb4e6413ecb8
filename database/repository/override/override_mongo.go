// File: database/repository/override/override_mongo.go
package overrideRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"slotify/models"
)

func (r *mongoOverrideRepo) GetInRange(ctx context.Context, serviceID string, staffID *string, from, to time.Time) ([]models.AvailabilityOverride, error) {
	// No per-call timeout here: the availability engine races this lookup
	// against its own short deadline.
	filter := bson.M{
		"serviceId": serviceID,
		"date":      bson.M{"$gte": startOfDay(from), "$lte": to},
	}
	if staffID != nil {
		filter["$or"] = bson.A{
			bson.M{"staffId": bson.M{"$exists": false}},
			bson.M{"staffId": nil},
			bson.M{"staffId": *staffID},
		}
	} else {
		filter["staffId"] = bson.M{"$in": bson.A{nil, ""}}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var overrides []models.AvailabilityOverride
	if err := cursor.All(ctx, &overrides); err != nil {
		return nil, err
	}
	return overrides, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
