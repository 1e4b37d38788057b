package models

import (
	"time"
)

// File is the stored metadata for an uploaded file. The bytes live on
// disk under the configured upload directory, keyed by StoredName.
type File struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProjectID  uint      `gorm:"index;not null" json:"project_id"`
	UploaderID uint      `gorm:"not null" json:"uploader_id"`
	Name       string    `gorm:"not null" json:"name"`
	StoredName string    `gorm:"uniqueIndex;not null" json:"-"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type"`
	CreatedAt  time.Time `json:"created_at"`
}
