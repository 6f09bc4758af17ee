package propertyRepo

import (
	"context"

	"complyhub/database"
	"complyhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PropertyRepository interface {
	Create(ctx context.Context, property models.Property) (string, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Property, error)
	GetAll(ctx context.Context) ([]models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	UpdateComplianceScore(ctx context.Context, id string, score int) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoPropertyRepo struct {
	coll *mongo.Collection
}

// NewMongoPropertyRepo returns a PropertyRepository backed by MongoDB.
func NewMongoPropertyRepo() PropertyRepository {
	return &mongoPropertyRepo{
		coll: database.DB().Collection("properties"),
	}
}
