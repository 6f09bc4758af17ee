package models

import "time"

// DocumentFolder groups uploaded documents within a property. Folder
// names are unique per property (backend unique index).
type DocumentFolder struct {
	ID         string    `bson:"id" json:"id"`
	PropertyID string    `bson:"property_id" json:"property_id"`
	Name       string    `bson:"name" json:"name"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// Document is the record for one uploaded file.
type Document struct {
	ID          string    `bson:"id" json:"id"`
	PropertyID  string    `bson:"property_id" json:"property_id"`
	FolderID    string    `bson:"folder_id" json:"folder_id"`
	Name        string    `bson:"name" json:"name"`
	StoragePath string    `bson:"storage_path" json:"storage_path"` // {userID}/{propertyID}/{uuid}{ext}
	URL         string    `bson:"url" json:"url"`
	SizeBytes   int64     `bson:"size_bytes,omitempty" json:"size_bytes,omitempty"`
	UploadedBy  string    `bson:"uploaded_by" json:"uploaded_by"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// DocumentUploadResult reports the outcome for a single file within a
// batch upload. Failures do not stop the rest of the batch.
type DocumentUploadResult struct {
	FileName string    `json:"file_name"`
	Document *Document `json:"document,omitempty"`
	Error    string    `json:"error,omitempty"`
}
