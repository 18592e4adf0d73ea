package models

import "encoding/json"

// Nazwy sekcji strony głównej edytowalnych w panelu.
const (
	SectionHero    = "hero"
	SectionAbout   = "about"
	SectionOffer   = "offer"
	SectionGallery = "gallery"
	SectionContact = "contact"
)

// ContentSection nazwana sekcja strony z dowolną strukturą JSON.
// Panel zapisuje tu cały blob sekcji; strona publiczna czyta go przy
// każdym żądaniu, struktura jest nieprzezroczysta dla backendu.
type ContentSection struct {
	BaseModel
	Section string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"section"`
	Data    json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"data"`
}
