package logbookRepo

import (
	"context"
	"errors"
	"time"

	"complyhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new logbook and returns its ID.
func (r *mongoLogbookRepo) Create(ctx context.Context, logbook models.Logbook) (string, error) {
	if logbook.ID == "" {
		logbook.ID = uuid.New().String()
	}
	logbook.CreatedAt = time.Now()
	logbook.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, logbook)
	if err != nil {
		return "", err
	}
	return logbook.ID, nil
}

// GetByID returns a logbook by its ID.
func (r *mongoLogbookRepo) GetByID(ctx context.Context, id string) (*models.Logbook, error) {
	var logbook models.Logbook
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&logbook)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("logbook not found")
		}
		return nil, err
	}
	return &logbook, nil
}

// GetByPropertyID fetches all logbooks for a property.
func (r *mongoLogbookRepo) GetByPropertyID(ctx context.Context, propertyID string) ([]models.Logbook, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"property_id": propertyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logbooks []models.Logbook
	if err := cursor.All(ctx, &logbooks); err != nil {
		return nil, err
	}
	return logbooks, nil
}

// Update replaces the stored logbook.
func (r *mongoLogbookRepo) Update(ctx context.Context, logbook *models.Logbook) error {
	logbook.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": logbook.ID}, logbook)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("logbook not found")
	}
	return nil
}

// DeleteByID removes a logbook and its entries.
func (r *mongoLogbookRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("logbook not found")
	}
	_, err = r.entries.DeleteMany(ctx, bson.M{"logbook_id": id})
	return err
}

// CreateEntry appends a performed check to a logbook.
func (r *mongoLogbookRepo) CreateEntry(ctx context.Context, entry models.LogbookEntry) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()

	_, err := r.entries.InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// GetEntries returns a logbook's entries, most recent first.
func (r *mongoLogbookRepo) GetEntries(ctx context.Context, logbookID string) ([]models.LogbookEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "performed_at", Value: -1}})
	cursor, err := r.entries.Find(ctx, bson.M{"logbook_id": logbookID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.LogbookEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
