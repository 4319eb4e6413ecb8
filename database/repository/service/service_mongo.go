// File: database/repository/service/service_mongo.go
package serviceRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

func (r *mongoServiceRepo) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": serviceID}).Decode(&svc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}

func (r *mongoServiceRepo) ListActive(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"active": true, "bookingEnabled": bson.M{"$ne": false}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}
