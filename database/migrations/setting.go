package migrations

import (
	"gorm.io/gorm"

	"ledkino.pl/models"
)

// MigrateSettingsTable tworzy/aktualizuje tabelę ustawień strony.
func MigrateSettingsTable(db *gorm.DB) error {
	return db.AutoMigrate(&models.Setting{})
}
