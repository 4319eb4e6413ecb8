// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/database"
	"slotify/models"
)

// BookingRepository exposes read access to existing bookings.
type BookingRepository interface {
	// GetActiveInRange returns PENDING/CONFIRMED bookings for a service
	// scheduled within [from, to], optionally filtered by staff member.
	GetActiveInRange(ctx context.Context, serviceID string, staffID *string, from, to time.Time) ([]models.Booking, error)

	// CountActiveOverlapping counts PENDING/CONFIRMED bookings whose occupied
	// interval overlaps [start, end).
	CountActiveOverlapping(ctx context.Context, serviceID string, staffID *string, start, end time.Time) (int64, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
