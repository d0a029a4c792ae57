package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xaadesh/1ndex/internal/database"
	"github.com/0xaadesh/1ndex/internal/drive"
	"github.com/0xaadesh/1ndex/internal/store"
	"github.com/0xaadesh/1ndex/internal/websocket"
)

// CreateFile handles creation of a download link record
func CreateFile(c *gin.Context) {
	var input struct {
		Name        string  `json:"name" binding:"required"`
		DownloadURL string  `json:"download_url" binding:"required"`
		FolderID    *string `json:"folder_id,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: name and download_url are required"})
		return
	}

	file, err := store.New(database.GetDB()).CreateFile(input.Name, input.DownloadURL, input.FolderID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	websocket.GetHub().NotifyTreeChanged()
	c.JSON(http.StatusCreated, gin.H{
		"file":         file,
		"is_drive_url": drive.IsGoogleDriveURL(input.DownloadURL),
	})
}

// UpdateFile handles updating a file's name and download link
func UpdateFile(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		DownloadURL string `json:"download_url" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: name and download_url are required"})
		return
	}

	file, err := store.New(database.GetDB()).UpdateFile(c.Param("id"), input.Name, input.DownloadURL)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	websocket.GetHub().NotifyTreeChanged()
	c.JSON(http.StatusOK, file)
}

// DeleteFile handles file deletion
func DeleteFile(c *gin.Context) {
	if err := store.New(database.GetDB()).DeleteFile(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}

	websocket.GetHub().NotifyTreeChanged()
	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

// respondStoreError maps store errors onto HTTP responses.
func respondStoreError(c *gin.Context, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrConstraint):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parent folder not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
