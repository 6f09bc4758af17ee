package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements StorageService on Cloudinary. The
// storage path doubles as the Cloudinary public ID.
type CloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewCloudinaryStorage creates a CloudinaryStorage instance.
func NewCloudinaryStorage(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &CloudinaryStorage{cld: cld, cloudName: cloudName}
}

// Upload stores the file under storagePath and returns the stored path
// plus the public URL reported by Cloudinary.
func (s *CloudinaryStorage) Upload(ctx context.Context, localFilePath, storagePath string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		PublicID:     storagePath,
		ResourceType: "auto",
	})
	if err != nil {
		return "", "", fmt.Errorf("CloudinaryStorage: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("CloudinaryStorage: no public ID returned")
	}
	return result.PublicID, result.SecureURL, nil
}

// DownloadURL builds a public URL for a stored file.
func (s *CloudinaryStorage) DownloadURL(ctx context.Context, storagePath string) (string, error) {
	img, err := s.cld.Image(storagePath)
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorage: failed to build asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorage: failed to build URL: %w", err)
	}
	return url, nil
}

// Delete removes a stored file.
func (s *CloudinaryStorage) Delete(ctx context.Context, storagePath string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: storagePath})
	if err != nil {
		return fmt.Errorf("CloudinaryStorage: failed to delete file: %w", err)
	}
	return nil
}
