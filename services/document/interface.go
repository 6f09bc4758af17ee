package document

import (
	"context"

	documentRepo "complyhub/database/repository/document"
	propertyRepo "complyhub/database/repository/property"
	"complyhub/models"
	"complyhub/services/storage"

	"go.uber.org/zap"
)

// FileUpload is one file staged for upload, saved to a temp path by
// the handler.
type FileUpload struct {
	Name      string
	TempPath  string
	SizeBytes int64
}

// DocumentService manages folders and uploaded documents for a
// property.
type DocumentService interface {
	CreateFolder(ctx context.Context, actor *models.User, propertyID, name string) (*models.DocumentFolder, error)
	ListFolders(ctx context.Context, actor *models.User, propertyID string) ([]models.DocumentFolder, error)

	// UploadDocuments processes files sequentially: upload to storage,
	// then insert the record. A failure is reported per file while the
	// batch continues; earlier files stay committed.
	UploadDocuments(ctx context.Context, actor *models.User, propertyID, folderID string, files []FileUpload) ([]models.DocumentUploadResult, error)
	ListDocuments(ctx context.Context, actor *models.User, propertyID, folderID string) ([]models.Document, error)
	DownloadURL(ctx context.Context, actor *models.User, documentID string) (string, error)
	DeleteDocument(ctx context.Context, actor *models.User, documentID string) error
}

// DefaultDocumentService is the production implementation.
type DefaultDocumentService struct {
	Repo         documentRepo.DocumentRepository
	PropertyRepo propertyRepo.PropertyRepository
	Storage      storage.StorageService
	Logger       *zap.Logger
}
