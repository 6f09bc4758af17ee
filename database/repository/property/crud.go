package propertyRepo

import (
	"context"
	"errors"
	"time"

	"complyhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new property and returns its ID.
func (r *mongoPropertyRepo) Create(ctx context.Context, property models.Property) (string, error) {
	if property.ID == "" {
		property.ID = uuid.New().String()
	}
	property.CreatedAt = time.Now()
	property.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, property)
	if err != nil {
		return "", err
	}
	return property.ID, nil
}

// GetByID returns a property by its ID.
func (r *mongoPropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&property)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("property not found")
		}
		return nil, err
	}
	return &property, nil
}

// GetByUserID fetches all properties owned by a user.
func (r *mongoPropertyRepo) GetByUserID(ctx context.Context, userID string) ([]models.Property, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// GetAll fetches every property; used by the nightly score recompute.
func (r *mongoPropertyRepo) GetAll(ctx context.Context) ([]models.Property, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoPropertyRepo) find(ctx context.Context, filter bson.M) ([]models.Property, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// Update replaces the stored property.
func (r *mongoPropertyRepo) Update(ctx context.Context, property *models.Property) error {
	property.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": property.ID}, property)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("property not found")
	}
	return nil
}

// UpdateComplianceScore writes just the stored score field.
func (r *mongoPropertyRepo) UpdateComplianceScore(ctx context.Context, id string, score int) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"compliance_score": score, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("property not found")
	}
	return nil
}

// DeleteByID removes a property.
func (r *mongoPropertyRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("property not found")
	}
	return nil
}
