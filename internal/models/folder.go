package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Folder is a directory node. ParentID is nil for root-level folders
// and immutable after creation, so the tree can never contain a cycle.
type Folder struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	ParentID  *string   `json:"parent_id" gorm:"index;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Children  []Folder  `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	Files     []File    `json:"files,omitempty" gorm:"foreignKey:FolderID"`
}

// BeforeCreate assigns a UUID primary key
func (f *Folder) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}

// PathEntry is one breadcrumb segment, root-first in a path slice.
type PathEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FolderTree is a folder together with its fully nested descendants,
// used by the sidebar tree view.
type FolderTree struct {
	Folder
	Children []FolderTree `json:"children"`
}
