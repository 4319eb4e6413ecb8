// File: database/repository/staff/staff_mongo.go
package staffRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

func (r *mongoStaffRepo) GetByID(ctx context.Context, staffID string) (*models.StaffMember, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var member models.StaffMember
	err := r.coll.FindOne(ctx, bson.M{"id": staffID}).Decode(&member)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}
