// Package store owns the folder/file tree and every read and mutation
// against it. Handlers pass plain scalars in and get plain model
// structs or sentinel errors back; nothing gin-specific leaks in here.
package store

import (
	"errors"
	"fmt"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"

	"github.com/0xaadesh/1ndex/internal/drive"
	"github.com/0xaadesh/1ndex/internal/models"
)

// listOrder keeps sibling listings stable: lexical by name under the
// database collation, ties broken by insertion order. Deployments that
// want strict byte-wise ordering on Postgres should create the
// database with LC_COLLATE=C.
const listOrder = "name ASC, created_at ASC, id ASC"

// TreeStore performs all folder/file operations against one database.
type TreeStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *TreeStore {
	return &TreeStore{db: db}
}

// FolderContents is the composite read behind every browse view.
// Folder is nil and Path empty for the root view.
type FolderContents struct {
	Folder  *models.Folder     `json:"folder"`
	Folders []models.Folder    `json:"folders"`
	Files   []models.File      `json:"files"`
	Path    []models.PathEntry `json:"path"`
}

// ListChildren returns the direct child folders and files of the given
// parent, or the root-level entries when parentID is nil. An unknown
// non-nil parent yields empty lists, not an error.
func (s *TreeStore) ListChildren(parentID *string) ([]models.Folder, []models.File, error) {
	folders := []models.Folder{}
	files := []models.File{}

	if err := scopeParent(s.db, "parent_id", parentID).Order(listOrder).Find(&folders).Error; err != nil {
		return nil, nil, fmt.Errorf("listing folders: %w", err)
	}
	if err := scopeParent(s.db, "folder_id", parentID).Order(listOrder).Find(&files).Error; err != nil {
		return nil, nil, fmt.Errorf("listing files: %w", err)
	}
	return folders, files, nil
}

func scopeParent(db *gorm.DB, column string, parentID *string) *gorm.DB {
	if parentID == nil {
		return db.Where(column + " IS NULL")
	}
	return db.Where(column+" = ?", *parentID)
}

// GetFolder fetches one folder with its direct children and files
// attached, both sorted like ListChildren.
func (s *TreeStore) GetFolder(id string) (*models.Folder, error) {
	var folder models.Folder
	err := s.db.
		Preload("Children", func(db *gorm.DB) *gorm.DB { return db.Order(listOrder) }).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order(listOrder) }).
		First(&folder, "id = ?", id).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &folder, nil
}

// GetPath walks parent links from id up to the root and returns the
// breadcrumb trail root-first, ending at id itself. Each step is one
// point lookup, so the cost is O(depth). A dangling parent reference
// ends the walk early with the partial path collected so far.
func (s *TreeStore) GetPath(id string) ([]models.PathEntry, error) {
	path := []models.PathEntry{}
	currentID := &id

	for currentID != nil {
		var folder models.Folder
		err := s.db.Select("id", "name", "parent_id").First(&folder, "id = ?", *currentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("resolving path: %w", err)
		}
		path = append([]models.PathEntry{{ID: folder.ID, Name: folder.Name}}, path...)
		currentID = folder.ParentID
	}
	return path, nil
}

// GetFolderWithContents is the single read every page view needs. A nil
// id means the root: its children and files with an empty path and no
// folder record. A non-nil id that does not exist is ErrNotFound; the
// root never is.
func (s *TreeStore) GetFolderWithContents(id *string) (*FolderContents, error) {
	if id == nil {
		folders, files, err := s.ListChildren(nil)
		if err != nil {
			return nil, err
		}
		return &FolderContents{Folders: folders, Files: files, Path: []models.PathEntry{}}, nil
	}

	folder, err := s.GetFolder(*id)
	if err != nil {
		return nil, err
	}
	path, err := s.GetPath(*id)
	if err != nil {
		return nil, err
	}
	return &FolderContents{
		Folder:  folder,
		Folders: folder.Children,
		Files:   folder.Files,
		Path:    path,
	}, nil
}

// GetFolderTree returns the fully nested folder tree below parentID
// (nil for the whole tree). Recursion is bounded by the actual tree
// depth; cycles cannot exist since parents are immutable.
func (s *TreeStore) GetFolderTree(parentID *string) ([]models.FolderTree, error) {
	var folders []models.Folder
	err := scopeParent(s.db, "parent_id", parentID).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order(listOrder) }).
		Order(listOrder).
		Find(&folders).Error
	if err != nil {
		return nil, fmt.Errorf("listing folder tree: %w", err)
	}

	tree := make([]models.FolderTree, 0, len(folders))
	for _, folder := range folders {
		children, err := s.GetFolderTree(&folder.ID)
		if err != nil {
			return nil, err
		}
		tree = append(tree, models.FolderTree{Folder: folder, Children: children})
	}
	return tree, nil
}

// CreateFolder inserts a folder under parentID (nil for root). The
// parent must exist; a missing parent is ErrConstraint.
func (s *TreeStore) CreateFolder(name string, parentID *string) (*models.Folder, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := s.checkFolderExists(parentID); err != nil {
		return nil, err
	}

	folder := models.Folder{Name: name, ParentID: parentID}
	if err := s.db.Create(&folder).Error; err != nil {
		return nil, fmt.Errorf("creating folder: %w", err)
	}
	return &folder, nil
}

// CreateFile inserts a download link under folderID (nil for root).
// Recognized Google Drive share URLs are stored in their direct
// download form; anything else is stored verbatim.
func (s *TreeStore) CreateFile(name, downloadURL string, folderID *string) (*models.File, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateURL(downloadURL); err != nil {
		return nil, err
	}
	if err := s.checkFolderExists(folderID); err != nil {
		return nil, err
	}

	if direct, ok := drive.ToDirectDownloadLink(downloadURL); ok {
		downloadURL = direct
	}

	file := models.File{Name: name, DownloadURL: downloadURL, FolderID: folderID}
	if err := s.db.Create(&file).Error; err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}
	return &file, nil
}

// RenameFolder updates the folder's name only; the parent is immutable.
func (s *TreeStore) RenameFolder(id, newName string) (*models.Folder, error) {
	if err := validateName(newName); err != nil {
		return nil, err
	}

	var folder models.Folder
	if err := s.db.First(&folder, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	folder.Name = newName
	if err := s.db.Save(&folder).Error; err != nil {
		return nil, fmt.Errorf("renaming folder: %w", err)
	}
	return &folder, nil
}

// UpdateFile replaces the file's name and download URL, normalizing
// the URL the same way CreateFile does.
func (s *TreeStore) UpdateFile(id, newName, newDownloadURL string) (*models.File, error) {
	if err := validateName(newName); err != nil {
		return nil, err
	}
	if err := validateURL(newDownloadURL); err != nil {
		return nil, err
	}

	var file models.File
	if err := s.db.First(&file, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}

	if direct, ok := drive.ToDirectDownloadLink(newDownloadURL); ok {
		newDownloadURL = direct
	}
	file.Name = newName
	file.DownloadURL = newDownloadURL
	if err := s.db.Save(&file).Error; err != nil {
		return nil, fmt.Errorf("updating file: %w", err)
	}
	return &file, nil
}

// DeleteFolder removes the folder and every folder and file in its
// subtree in one transaction: either the whole subtree disappears or
// none of it does. Descendants are collected breadth-first, one query
// per tree level.
func (s *TreeStore) DeleteFolder(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var folder models.Folder
		if err := tx.Select("id").First(&folder, "id = ?", id).Error; err != nil {
			return translateErr(err)
		}

		ids := []string{id}
		frontier := []string{id}
		for len(frontier) > 0 {
			var next []string
			if err := tx.Model(&models.Folder{}).Where("parent_id IN ?", frontier).Pluck("id", &next).Error; err != nil {
				return fmt.Errorf("collecting subtree: %w", err)
			}
			ids = append(ids, next...)
			frontier = next
		}

		if err := tx.Where("folder_id IN ?", ids).Delete(&models.File{}).Error; err != nil {
			return fmt.Errorf("deleting subtree files: %w", err)
		}
		if err := tx.Where("id IN ?", ids).Delete(&models.Folder{}).Error; err != nil {
			return fmt.Errorf("deleting subtree folders: %w", err)
		}
		return nil
	})
}

// DeleteFile removes a single file record.
func (s *TreeStore) DeleteFile(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.File{})
	if result.Error != nil {
		return fmt.Errorf("deleting file: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RequireFolder verifies the folder exists (nil always passes, it is
// the root). Returns ErrConstraint when the id dangles.
func (s *TreeStore) RequireFolder(id *string) error {
	return s.checkFolderExists(id)
}

func (s *TreeStore) checkFolderExists(id *string) error {
	if id == nil {
		return nil
	}
	var count int64
	if err := s.db.Model(&models.Folder{}).Where("id = ?", *id).Count(&count).Error; err != nil {
		return fmt.Errorf("checking parent folder: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("parent folder %s: %w", *id, ErrConstraint)
	}
	return nil
}

func validateName(name string) error {
	if err := validation.Validate(name, validation.Required, validation.RuneLength(1, 255)); err != nil {
		return &ValidationError{Message: "name: " + err.Error()}
	}
	return nil
}

func validateURL(raw string) error {
	err := validation.Validate(raw, validation.Required, validation.By(func(value interface{}) error {
		u, err := url.Parse(value.(string))
		if err != nil || !u.IsAbs() || u.Host == "" {
			return errors.New("must be an absolute URL")
		}
		return nil
	}))
	if err != nil {
		return &ValidationError{Message: "download_url: " + err.Error()}
	}
	return nil
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
