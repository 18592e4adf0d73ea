package migrations

import (
	"gorm.io/gorm"

	"ledkino.pl/models"
)

// MigrateContentSectionsTable tworzy/aktualizuje tabelę sekcji treści.
func MigrateContentSectionsTable(db *gorm.DB) error {
	return db.AutoMigrate(&models.ContentSection{})
}
