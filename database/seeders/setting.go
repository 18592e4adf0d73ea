package seeders

import (
	"gorm.io/gorm"

	"ledkino.pl/models"
)

var defaultSettings = map[string]string{
	models.SettingSiteTitle:       "LED Kino Plenerowe — kino pod chmurką",
	models.SettingSiteDescription: "Wynajem ekranu LED z pełną obsługą seansu plenerowego. Eventy miejskie, firmowe, hotelowe i festiwale.",
	models.SettingSiteKeywords:    "kino plenerowe, ekran LED, kino pod chmurką, wynajem ekranu",
	models.SettingContactEmail:    "biuro@ledkino.pl",
	models.SettingContactPhone:    "+48 600 000 000",
	models.SettingContactAddress:  "ul. Filmowa 1, 00-001 Warszawa",
}

// SeedSettings zakłada brakujące ustawienia; istniejących nie dotyka.
func SeedSettings(db *gorm.DB) error {
	for key, value := range defaultSettings {
		var count int64
		if err := db.Model(&models.Setting{}).Where("key = ?", key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		setting := models.Setting{Key: key, Value: value}
		if err := db.Create(&setting).Error; err != nil {
			return err
		}
	}
	return nil
}
