package migrations

import (
	"gorm.io/gorm"

	"ledkino.pl/models"
)

// MigrateUsersTable tworzy/aktualizuje tabelę kont panelu.
func MigrateUsersTable(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}
