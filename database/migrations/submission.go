package migrations

import (
	"gorm.io/gorm"

	"ledkino.pl/models"
)

// MigrateSubmissionsTables tworzy/aktualizuje tabele zgłoszeń i historii
// odpowiedzi. Między tabelami celowo nie ma klucza obcego z kaskadą,
// usunięcie zgłoszenia zostawia odpowiedzi w tabeli (decyzja retencyjna).
func MigrateSubmissionsTables(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Submission{}); err != nil {
		return err
	}
	return db.AutoMigrate(&models.SubmissionReply{})
}
