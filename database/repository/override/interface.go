// File: database/repository/override/interface.go
package overrideRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/database"
	"slotify/models"
)

// OverrideRepository exposes read access to administrative availability
// overrides.
type OverrideRepository interface {
	// GetInRange returns overrides for a service dated within [from, to].
	// Overrides not pinned to a staff member always apply; when staffID is
	// given, overrides pinned to that member apply as well.
	GetInRange(ctx context.Context, serviceID string, staffID *string, from, to time.Time) ([]models.AvailabilityOverride, error)
}

type mongoOverrideRepo struct {
	coll *mongo.Collection
}

// NewMongoOverrideRepo constructs a new MongoDB OverrideRepository.
func NewMongoOverrideRepo() OverrideRepository {
	return &mongoOverrideRepo{
		coll: database.DB().Collection("availability_overrides"),
	}
}
