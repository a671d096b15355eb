package database

import (
	"github.com/quangtran/monngon/backend/internal/models"
	"gorm.io/gorm"
)

// RunMigrations creates or updates the schema for all persisted models.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Interaction{},
		&models.MenuItem{},
	)
}
