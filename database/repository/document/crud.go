package documentRepo

import (
	"context"
	"errors"
	"time"

	"complyhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateFolder inserts a folder. A duplicate name within the property
// surfaces as a DuplicateFolderError.
func (r *mongoDocumentRepo) CreateFolder(ctx context.Context, folder models.DocumentFolder) (string, error) {
	if folder.ID == "" {
		folder.ID = uuid.New().String()
	}
	folder.CreatedAt = time.Now()

	_, err := r.folders.InsertOne(ctx, folder)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", &DuplicateFolderError{Name: folder.Name}
		}
		return "", err
	}
	return folder.ID, nil
}

// GetFoldersByPropertyID fetches all folders for a property.
func (r *mongoDocumentRepo) GetFoldersByPropertyID(ctx context.Context, propertyID string) ([]models.DocumentFolder, error) {
	cursor, err := r.folders.Find(ctx, bson.M{"property_id": propertyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var folders []models.DocumentFolder
	if err := cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// GetFolderByID returns a folder by its ID.
func (r *mongoDocumentRepo) GetFolderByID(ctx context.Context, id string) (*models.DocumentFolder, error) {
	var folder models.DocumentFolder
	err := r.folders.FindOne(ctx, bson.M{"id": id}).Decode(&folder)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("folder not found")
		}
		return nil, err
	}
	return &folder, nil
}

// DeleteFolder removes a folder and its document records.
func (r *mongoDocumentRepo) DeleteFolder(ctx context.Context, id string) error {
	res, err := r.folders.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("folder not found")
	}
	_, err = r.docs.DeleteMany(ctx, bson.M{"folder_id": id})
	return err
}

// CreateDocument inserts the record for an uploaded file.
func (r *mongoDocumentRepo) CreateDocument(ctx context.Context, doc models.Document) (string, error) {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	doc.CreatedAt = time.Now()

	_, err := r.docs.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return doc.ID, nil
}

// GetDocumentByID returns a document record by its ID.
func (r *mongoDocumentRepo) GetDocumentByID(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	err := r.docs.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("document not found")
		}
		return nil, err
	}
	return &doc, nil
}

// GetDocumentsByFolderID fetches all documents in a folder.
func (r *mongoDocumentRepo) GetDocumentsByFolderID(ctx context.Context, folderID string) ([]models.Document, error) {
	return r.findDocs(ctx, bson.M{"folder_id": folderID})
}

// GetDocumentsByPropertyID fetches all documents for a property.
func (r *mongoDocumentRepo) GetDocumentsByPropertyID(ctx context.Context, propertyID string) ([]models.Document, error) {
	return r.findDocs(ctx, bson.M{"property_id": propertyID})
}

func (r *mongoDocumentRepo) findDocs(ctx context.Context, filter bson.M) ([]models.Document, error) {
	cursor, err := r.docs.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// DeleteDocument removes a document record.
func (r *mongoDocumentRepo) DeleteDocument(ctx context.Context, id string) error {
	res, err := r.docs.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("document not found")
	}
	return nil
}
