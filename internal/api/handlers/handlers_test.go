package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/0xaadesh/1ndex/internal/api/routes"
	"github.com/0xaadesh/1ndex/internal/config"
	"github.com/0xaadesh/1ndex/internal/database"
	"github.com/0xaadesh/1ndex/internal/models"
	"github.com/0xaadesh/1ndex/internal/utils"
)

func setupServer(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()

	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Folder{}, &models.File{}))
	database.DB = db

	cfg, err := config.Load()
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRoutes(router, cfg)
	return router, cfg
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := utils.GenerateToken("admin", cfg)
	require.NoError(t, err)
	return token
}

func TestBrowseRootEmpty(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/browse", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Folder  *models.Folder     `json:"folder"`
		Folders []models.Folder    `json:"folders"`
		Files   []models.File      `json:"files"`
		Path    []models.PathEntry `json:"path"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Folder)
	assert.Empty(t, resp.Folders)
	assert.Empty(t, resp.Files)
	assert.Empty(t, resp.Path)
}

func TestBrowseFolderNotFound(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/browse/no-such-folder", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogin(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"username":"admin","password":"hunter2"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"username":"admin","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMutationsRequireToken(t *testing.T) {
	router, _ := setupServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/folders", `{"name":"x"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/folders", `{"name":"x"}`, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateFolderAndBrowse(t *testing.T) {
	router, cfg := setupServer(t)
	token := adminToken(t, cfg)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/folders", `{"name":"docs"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var folder models.Folder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &folder))
	assert.Equal(t, "docs", folder.Name)
	assert.NotEmpty(t, folder.ID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/browse/"+folder.ID, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"docs"`)
}

func TestCreateFolderValidationError(t *testing.T) {
	router, cfg := setupServer(t)
	token := adminToken(t, cfg)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/folders", `{"name":""}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/folders",
		`{"name":"x","parent_id":"no-such-folder"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateFileNormalizesURL(t *testing.T) {
	router, cfg := setupServer(t)
	token := adminToken(t, cfg)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/files",
		`{"name":"slides","download_url":"https://drive.google.com/file/d/ABC123xyz/view?usp=sharing"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		File       models.File `json:"file"`
		IsDriveURL bool        `json:"is_drive_url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://drive.google.com/uc?export=download&id=ABC123xyz", resp.File.DownloadURL)
	assert.True(t, resp.IsDriveURL)
}

func TestBulkCreateFiles(t *testing.T) {
	router, cfg := setupServer(t)
	token := adminToken(t, cfg)

	body := `{"files":[
		{"name":"one","download_url":"https://example.com/1"},
		{"name":"","download_url":"https://example.com/2"},
		{"name":"three","download_url":"https://drive.google.com/open?id=QWER-1234"}
	]}`
	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/files/bulk", body, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total        int              `json:"total"`
		SuccessCount int              `json:"success_count"`
		Results      []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.SuccessCount)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, false, resp.Results[1]["success"])
}

func TestDeleteFolderEndpoint(t *testing.T) {
	router, cfg := setupServer(t)
	token := adminToken(t, cfg)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/folders", `{"name":"gone"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var folder models.Folder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &folder))

	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/folders/"+folder.ID, "", token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/folders/"+folder.ID, "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTreeEndpoint(t *testing.T) {
	router, cfg := setupServer(t)
	token := adminToken(t, cfg)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/folders", `{"name":"root"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var root models.Folder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &root))

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/folders",
		`{"name":"child","parent_id":"`+root.ID+`"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/tree", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tree []models.FolderTree `json:"tree"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Tree, 1)
	require.Len(t, resp.Tree[0].Children, 1)
	assert.Equal(t, "child", resp.Tree[0].Children[0].Name)
}

func TestExportCSV(t *testing.T) {
	router, cfg := setupServer(t)
	token := adminToken(t, cfg)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/folders", `{"name":"docs"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var folder models.Folder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &folder))

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/files",
		`{"name":"paper","download_url":"https://example.com/paper.pdf","folder_id":"`+folder.ID+`"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/export/csv", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "paper")
	assert.Contains(t, w.Body.String(), "/docs")
}
