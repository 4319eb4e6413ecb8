// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"slotify/models"
)

func (r *mongoBookingRepo) GetActiveInRange(ctx context.Context, serviceID string, staffID *string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"serviceId":   serviceID,
		"status":      bson.M{"$in": models.ActiveBookingStatuses},
		"scheduledAt": bson.M{"$gte": from, "$lte": to},
	}
	if staffID != nil {
		filter["staffId"] = *staffID
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) CountActiveOverlapping(ctx context.Context, serviceID string, staffID *string, start, end time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Overlap: scheduledAt < end AND scheduledAt + durationMinutes > start.
	// The right-hand side needs $expr since it is computed per document.
	filter := bson.M{
		"serviceId":   serviceID,
		"status":      bson.M{"$in": models.ActiveBookingStatuses},
		"scheduledAt": bson.M{"$lt": end},
		"$expr": bson.M{"$gt": bson.A{
			bson.M{"$add": bson.A{
				"$scheduledAt",
				bson.M{"$multiply": bson.A{"$durationMinutes", 60000}},
			}},
			start,
		}},
	}
	if staffID != nil {
		filter["staffId"] = *staffID
	}

	return r.coll.CountDocuments(ctx, filter)
}
