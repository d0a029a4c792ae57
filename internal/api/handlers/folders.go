package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xaadesh/1ndex/internal/database"
	"github.com/0xaadesh/1ndex/internal/store"
	"github.com/0xaadesh/1ndex/internal/websocket"
)

// CreateFolder handles folder creation
func CreateFolder(c *gin.Context) {
	var input struct {
		Name     string  `json:"name" binding:"required"`
		ParentID *string `json:"parent_id,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: folder name is required"})
		return
	}

	folder, err := store.New(database.GetDB()).CreateFolder(input.Name, input.ParentID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	websocket.GetHub().NotifyTreeChanged()
	c.JSON(http.StatusCreated, folder)
}

// UpdateFolder handles renaming a folder. The parent is immutable, so
// name is the only accepted field.
func UpdateFolder(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: folder name is required"})
		return
	}

	folder, err := store.New(database.GetDB()).RenameFolder(c.Param("id"), input.Name)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	websocket.GetHub().NotifyTreeChanged()
	c.JSON(http.StatusOK, folder)
}

// DeleteFolder handles folder deletion, cascading over the whole
// subtree.
func DeleteFolder(c *gin.Context) {
	if err := store.New(database.GetDB()).DeleteFolder(c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}

	websocket.GetHub().NotifyTreeChanged()
	c.JSON(http.StatusOK, gin.H{"message": "Folder deleted successfully"})
}
