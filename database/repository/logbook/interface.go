package logbookRepo

import (
	"context"

	"complyhub/database"
	"complyhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type LogbookRepository interface {
	Create(ctx context.Context, logbook models.Logbook) (string, error)
	GetByID(ctx context.Context, id string) (*models.Logbook, error)
	GetByPropertyID(ctx context.Context, propertyID string) ([]models.Logbook, error)
	Update(ctx context.Context, logbook *models.Logbook) error
	DeleteByID(ctx context.Context, id string) error

	// Entries are append-only: no update or delete operations exist.
	CreateEntry(ctx context.Context, entry models.LogbookEntry) (string, error)
	GetEntries(ctx context.Context, logbookID string) ([]models.LogbookEntry, error)
}

type mongoLogbookRepo struct {
	coll    *mongo.Collection
	entries *mongo.Collection
}

// NewMongoLogbookRepo returns a LogbookRepository backed by MongoDB.
func NewMongoLogbookRepo() LogbookRepository {
	db := database.DB()
	return &mongoLogbookRepo{
		coll:    db.Collection("property_logbooks"),
		entries: db.Collection("logbook_entries"),
	}
}
