package serviceRepo

import (
	"context"

	"complyhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// GetAll returns the service catalogue.
func (r *mongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
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

// Seed inserts the default catalogue if the collection is empty.
func (r *mongoServiceRepo) Seed(ctx context.Context) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []models.Service{
		{Name: models.ServicePATTesting, Icon: "flash"},
		{Name: models.ServiceFireDoorInspection, Icon: "shield"},
		{Name: models.ServiceFireRiskAssessment, Icon: "flame"},
		{Name: "Gas Safety Check", Icon: "construct"},
		{Name: "Electrical Installation Condition Report", Icon: "bulb"},
		{Name: "Legionella Risk Assessment", Icon: "water"},
		{Name: "Asbestos Survey", Icon: "warning"},
		{Name: "Emergency Lighting Test", Icon: "sunny"},
	}
	docs := make([]interface{}, 0, len(defaults))
	for _, s := range defaults {
		s.ID = uuid.New().String()
		docs = append(docs, s)
	}
	_, err = r.coll.InsertMany(ctx, docs)
	return err
}
