package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xaadesh/1ndex/internal/database"
	"github.com/0xaadesh/1ndex/internal/store"
	"github.com/0xaadesh/1ndex/internal/websocket"
)

// FileLinkRequest is one entry of a bulk link creation request
type FileLinkRequest struct {
	Name        string `json:"name" binding:"required"`
	DownloadURL string `json:"download_url" binding:"required"`
}

// BulkCreateFiles creates several download links in one folder at
// once. Entries are processed independently: a bad entry is reported
// in its result slot and does not stop the rest.
func BulkCreateFiles(c *gin.Context) {
	var input struct {
		Files    []FileLinkRequest `json:"files" binding:"required"`
		FolderID *string           `json:"folder_id,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: files list is required"})
		return
	}

	if len(input.Files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
		return
	}

	treeStore := store.New(database.GetDB())

	// Verify folder once up front rather than per entry
	if err := treeStore.RequireFolder(input.FolderID); err != nil {
		respondStoreError(c, err)
		return
	}

	results := make([]gin.H, len(input.Files))
	successCount := 0
	for i, req := range input.Files {
		file, err := treeStore.CreateFile(req.Name, req.DownloadURL, input.FolderID)
		if err != nil {
			results[i] = gin.H{"success": false, "name": req.Name, "error": err.Error()}
			continue
		}
		results[i] = gin.H{"success": true, "file": file}
		successCount++
	}

	if successCount > 0 {
		websocket.GetHub().NotifyTreeChanged()
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Bulk link creation completed",
		"total":         len(input.Files),
		"success_count": successCount,
		"results":       results,
	})
}
