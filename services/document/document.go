package document

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"complyhub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (svc *DefaultDocumentService) ownedProperty(ctx context.Context, actor *models.User, propertyID string) (*models.Property, error) {
	property, err := svc.PropertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.UserID != actor.ID {
		return nil, errors.New("property not found")
	}
	return property, nil
}

// CreateFolder creates a folder; a duplicate name within the property
// surfaces the repository's conflict error unchanged so handlers can
// map it to a tailored message.
func (svc *DefaultDocumentService) CreateFolder(ctx context.Context, actor *models.User, propertyID, name string) (*models.DocumentFolder, error) {
	if name == "" {
		return nil, errors.New("folder name is required")
	}
	if _, err := svc.ownedProperty(ctx, actor, propertyID); err != nil {
		return nil, err
	}

	folder := models.DocumentFolder{PropertyID: propertyID, Name: name}
	id, err := svc.Repo.CreateFolder(ctx, folder)
	if err != nil {
		return nil, err
	}
	return svc.Repo.GetFolderByID(ctx, id)
}

// ListFolders returns a property's folders.
func (svc *DefaultDocumentService) ListFolders(ctx context.Context, actor *models.User, propertyID string) ([]models.DocumentFolder, error) {
	if _, err := svc.ownedProperty(ctx, actor, propertyID); err != nil {
		return nil, err
	}
	return svc.Repo.GetFoldersByPropertyID(ctx, propertyID)
}

// UploadDocuments uploads each file in turn. Each file is an
// independent upload-then-record pair; a failure partway leaves
// earlier files committed and is reported in that file's result.
func (svc *DefaultDocumentService) UploadDocuments(ctx context.Context, actor *models.User, propertyID, folderID string, files []FileUpload) ([]models.DocumentUploadResult, error) {
	if _, err := svc.ownedProperty(ctx, actor, propertyID); err != nil {
		return nil, err
	}
	folder, err := svc.Repo.GetFolderByID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder.PropertyID != propertyID {
		return nil, errors.New("folder does not belong to this property")
	}

	results := make([]models.DocumentUploadResult, 0, len(files))
	for _, file := range files {
		result := models.DocumentUploadResult{FileName: file.Name}

		ext := filepath.Ext(file.Name)
		storagePath := fmt.Sprintf("%s/%s/%s%s", actor.ID, propertyID, uuid.New().String(), ext)

		storedPath, url, err := svc.Storage.Upload(ctx, file.TempPath, storagePath)
		if err != nil {
			svc.Logger.Error("document upload failed",
				zap.String("file", file.Name), zap.Error(err))
			result.Error = fmt.Sprintf("failed to upload %s", file.Name)
			results = append(results, result)
			continue
		}

		doc := models.Document{
			PropertyID:  propertyID,
			FolderID:    folderID,
			Name:        file.Name,
			StoragePath: storedPath,
			URL:         url,
			SizeBytes:   file.SizeBytes,
			UploadedBy:  actor.ID,
		}
		id, err := svc.Repo.CreateDocument(ctx, doc)
		if err != nil {
			svc.Logger.Error("document record creation failed",
				zap.String("file", file.Name), zap.Error(err))
			result.Error = fmt.Sprintf("failed to record %s", file.Name)
			results = append(results, result)
			continue
		}
		doc.ID = id
		result.Document = &doc
		results = append(results, result)
	}
	return results, nil
}

// ListDocuments returns documents for a property, optionally scoped to
// one folder.
func (svc *DefaultDocumentService) ListDocuments(ctx context.Context, actor *models.User, propertyID, folderID string) ([]models.Document, error) {
	if _, err := svc.ownedProperty(ctx, actor, propertyID); err != nil {
		return nil, err
	}
	if folderID != "" {
		return svc.Repo.GetDocumentsByFolderID(ctx, folderID)
	}
	return svc.Repo.GetDocumentsByPropertyID(ctx, propertyID)
}

// DownloadURL resolves a fresh public URL for a document.
func (svc *DefaultDocumentService) DownloadURL(ctx context.Context, actor *models.User, documentID string) (string, error) {
	doc, err := svc.Repo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return "", err
	}
	if _, err := svc.ownedProperty(ctx, actor, doc.PropertyID); err != nil {
		return "", err
	}
	return svc.Storage.DownloadURL(ctx, doc.StoragePath)
}

// DeleteDocument removes the record, then best-effort purges the
// stored file.
func (svc *DefaultDocumentService) DeleteDocument(ctx context.Context, actor *models.User, documentID string) error {
	doc, err := svc.Repo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return err
	}
	if _, err := svc.ownedProperty(ctx, actor, doc.PropertyID); err != nil {
		return err
	}
	if err := svc.Repo.DeleteDocument(ctx, documentID); err != nil {
		return err
	}
	if err := svc.Storage.Delete(ctx, doc.StoragePath); err != nil {
		svc.Logger.Warn("failed to purge stored file",
			zap.String("path", doc.StoragePath), zap.Error(err))
	}
	return nil
}
