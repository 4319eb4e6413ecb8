// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"slotify/database"
	"slotify/models"
)

// ServiceRepository exposes read access to the service catalog.
type ServiceRepository interface {
	GetByID(ctx context.Context, serviceID string) (*models.Service, error)
	ListActive(ctx context.Context) ([]models.Service, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{
		coll: database.DB().Collection("services"),
	}
}
