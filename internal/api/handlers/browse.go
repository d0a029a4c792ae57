package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xaadesh/1ndex/internal/database"
	"github.com/0xaadesh/1ndex/internal/store"
	"github.com/0xaadesh/1ndex/internal/utils"
)

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Browse returns the root folder view: root-level folders and files
// with an empty breadcrumb path.
func Browse(c *gin.Context) {
	contents, err := store.New(database.GetDB()).GetFolderWithContents(nil)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, contents)
}

// BrowseFolder returns one folder's view: the folder itself, its
// direct children and files, and the breadcrumb path from the root.
func BrowseFolder(c *gin.Context) {
	id := c.Param("id")
	contents, err := store.New(database.GetDB()).GetFolderWithContents(utils.NullableID(id))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, contents)
}

// GetTree returns the full nested folder tree for the sidebar view.
func GetTree(c *gin.Context) {
	tree, err := store.New(database.GetDB()).GetFolderTree(nil)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tree": tree})
}

// GetFolderPath returns the breadcrumb trail for a folder, root-first.
func GetFolderPath(c *gin.Context) {
	path, err := store.New(database.GetDB()).GetPath(c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"path": path})
}
