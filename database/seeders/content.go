package seeders

import (
	"encoding/json"

	"gorm.io/gorm"

	"ledkino.pl/models"
)

// defaultSections startowa treść strony, panel nadpisze ją przy pierwszej
// edycji, ale strona musi mieć co renderować od pierwszego uruchomienia.
var defaultSections = map[string]map[string]interface{}{
	models.SectionHero: {
		"heading":    "Kino plenerowe na ekranie LED",
		"subheading": "Organizujemy seanse pod chmurką w całej Polsce — od parków miejskich po eventy firmowe.",
		"cta_label":  "Zapytaj o termin",
	},
	models.SectionAbout: {
		"heading": "Kim jesteśmy",
		"body":    "Od dziesięciu lat dowozimy ekran LED, nagłośnienie i pełną obsługę seansu w dowolne miejsce.",
	},
	models.SectionOffer: {
		"heading": "Oferta",
		"items": []map[string]string{
			{"title": "Event Miejski", "description": "Seanse plenerowe dla mieszkańców, obsługa do kilku tysięcy widzów."},
			{"title": "Event Firmowy", "description": "Kino na pikniku firmowym albo integracji — z popcornem i leżakami."},
			{"title": "Event Hotelowy", "description": "Kameralne seanse dla gości hoteli i ośrodków."},
			{"title": "Festiwal Plenerowy", "description": "Wielodniowe pokazy z licencjami filmowymi w pakiecie."},
		},
	},
	models.SectionGallery: {
		"heading": "Realizacje",
		"images":  []string{},
	},
	models.SectionContact: {
		"heading": "Porozmawiajmy o Twoim wydarzeniu",
		"body":    "Wypełnij formularz — odpowiadamy w ciągu jednego dnia roboczego.",
	},
}

// SeedContentSections zakłada brakujące sekcje; istniejących nie dotyka.
func SeedContentSections(db *gorm.DB) error {
	for name, data := range defaultSections {
		var count int64
		if err := db.Model(&models.ContentSection{}).Where("section = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		blob, err := json.Marshal(data)
		if err != nil {
			return err
		}
		section := models.ContentSection{Section: name, Data: blob}
		if err := db.Create(&section).Error; err != nil {
			return err
		}
	}
	return nil
}
