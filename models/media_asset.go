package models

// MediaAsset metadane obrazu wgranego do biblioteki mediów.
// Same bajty leżą w object storage pod ObjectKey; baza trzyma tylko opis.
type MediaAsset struct {
	BaseModel
	ObjectKey string `gorm:"type:varchar(255);uniqueIndex;not null" json:"object_key"`
	FileName  string `gorm:"type:varchar(255);not null" json:"file_name"`
	URL       string `gorm:"type:varchar(500);not null" json:"url"`
	Size      int64  `gorm:"not null" json:"size"`
	MimeType  string `gorm:"type:varchar(100);not null" json:"mime_type"`
	AltText   string `gorm:"type:varchar(255)" json:"alt_text"`
}
