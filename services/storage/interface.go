package storage

import "context"

// StorageService abstracts the object store. Files are keyed by a
// caller-generated path ({userID}/{propertyID}/{uuid}{ext}).
type StorageService interface {
	// Upload stores the local file under storagePath and returns the
	// stored path and a public URL.
	Upload(ctx context.Context, localFilePath, storagePath string) (string, string, error)
	// DownloadURL returns a public URL for a stored file.
	DownloadURL(ctx context.Context, storagePath string) (string, error)
	// Delete removes a stored file.
	Delete(ctx context.Context, storagePath string) error
}
