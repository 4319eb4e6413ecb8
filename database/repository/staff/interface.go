// File: database/repository/staff/interface.go
package staffRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/database"
	"slotify/models"
)

// StaffRepository exposes read access to staff members.
type StaffRepository interface {
	GetByID(ctx context.Context, staffID string) (*models.StaffMember, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	return &mongoStaffRepo{
		coll: database.DB().Collection("staff"),
	}
}
