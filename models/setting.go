package models

// Klucze ustawień znane aplikacji (seeder zakłada je przy starcie).
const (
	SettingSiteTitle       = "site_title"
	SettingSiteDescription = "site_description"
	SettingSiteKeywords    = "site_keywords"
	SettingContactEmail    = "contact_email"
	SettingContactPhone    = "contact_phone"
	SettingContactAddress  = "contact_address"
)

// Setting płaska para klucz/wartość ustawień strony (SEO, dane kontaktowe).
type Setting struct {
	BaseModel
	Key   string `gorm:"type:varchar(100);uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
