package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File is a named download link, always a leaf. DownloadURL holds the
// direct-download form when the submitted link was a recognized Google
// Drive share URL, otherwise the submitted URL verbatim.
type File struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	DownloadURL string    `json:"download_url" gorm:"not null"`
	FolderID    *string   `json:"folder_id" gorm:"index;size:36"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key
func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
