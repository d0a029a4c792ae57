package handlers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/0xaadesh/1ndex/internal/database"
	"github.com/0xaadesh/1ndex/internal/models"
)

// exportRecord is one flattened file link with its folder location.
type exportRecord struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
	FolderPath  string `json:"folder_path"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func collectExportRecords() ([]exportRecord, error) {
	db := database.GetDB()

	var folders []models.Folder
	if err := db.Find(&folders).Error; err != nil {
		return nil, err
	}
	var files []models.File
	if err := db.Order("name ASC, created_at ASC, id ASC").Find(&files).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}

	records := make([]exportRecord, 0, len(files))
	for _, f := range files {
		records = append(records, exportRecord{
			ID:          f.ID,
			Name:        f.Name,
			DownloadURL: f.DownloadURL,
			FolderPath:  folderPath(byID, f.FolderID),
			CreatedAt:   f.CreatedAt.String(),
			UpdatedAt:   f.UpdatedAt.String(),
		})
	}
	return records, nil
}

// folderPath walks parent links in memory; "/" is the root.
func folderPath(byID map[string]models.Folder, folderID *string) string {
	segments := []string{}
	for folderID != nil {
		folder, ok := byID[*folderID]
		if !ok {
			break
		}
		segments = append([]string{folder.Name}, segments...)
		folderID = folder.ParentID
	}
	return "/" + strings.Join(segments, "/")
}

func ExportCSV(c *gin.Context) {
	records, err := collectExportRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch files"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment;filename=links_export.csv")

	writer := csv.NewWriter(c.Writer)
	// Write header
	if err := writer.Write([]string{"ID", "Name", "Download URL", "Folder Path", "Created At", "Updated At"}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV header"})
		return
	}

	// Write data
	for _, r := range records {
		if err := writer.Write([]string{r.ID, r.Name, r.DownloadURL, r.FolderPath, r.CreatedAt, r.UpdatedAt}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV data"})
			return
		}
	}

	writer.Flush()
}

func ExportJSON(c *gin.Context) {
	records, err := collectExportRecords()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch files"})
		return
	}

	c.Header("Content-Disposition", "attachment;filename=links_export.json")

	jsonData, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to marshal JSON"})
		return
	}

	c.Data(http.StatusOK, "application/json", jsonData)
}
