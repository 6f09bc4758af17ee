package documentRepo

import (
	"context"

	"complyhub/database"
	"complyhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DuplicateFolderError is returned when a folder name already exists
// for the property (unique index violation).
type DuplicateFolderError struct {
	Name string
}

func (e *DuplicateFolderError) Error() string {
	return "folder \"" + e.Name + "\" already exists for this property"
}

type DocumentRepository interface {
	CreateFolder(ctx context.Context, folder models.DocumentFolder) (string, error)
	GetFoldersByPropertyID(ctx context.Context, propertyID string) ([]models.DocumentFolder, error)
	GetFolderByID(ctx context.Context, id string) (*models.DocumentFolder, error)
	DeleteFolder(ctx context.Context, id string) error

	CreateDocument(ctx context.Context, doc models.Document) (string, error)
	GetDocumentByID(ctx context.Context, id string) (*models.Document, error)
	GetDocumentsByFolderID(ctx context.Context, folderID string) ([]models.Document, error)
	GetDocumentsByPropertyID(ctx context.Context, propertyID string) ([]models.Document, error)
	DeleteDocument(ctx context.Context, id string) error
}

type mongoDocumentRepo struct {
	folders *mongo.Collection
	docs    *mongo.Collection
}

// NewMongoDocumentRepo returns a DocumentRepository backed by MongoDB.
func NewMongoDocumentRepo() DocumentRepository {
	db := database.DB()
	return &mongoDocumentRepo{
		folders: db.Collection("document_folders"),
		docs:    db.Collection("documents"),
	}
}
