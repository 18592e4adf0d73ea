package migrations

import (
	"gorm.io/gorm"

	"ledkino.pl/models"
)

// MigrateMediaAssetsTable tworzy/aktualizuje tabelę biblioteki mediów.
func MigrateMediaAssetsTable(db *gorm.DB) error {
	return db.AutoMigrate(&models.MediaAsset{})
}
