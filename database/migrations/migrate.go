package migrations

import (
	"github.com/0xaadesh/1ndex/internal/database"
	"github.com/0xaadesh/1ndex/internal/models"
)

func Migrate() error {
	db := database.GetDB()

	// Auto migrate tables
	return db.AutoMigrate(
		&models.Folder{},
		&models.File{},
	)
}
