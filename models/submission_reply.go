package models

// SubmissionReply kopia audytowa odpowiedzi wysłanej do klienta.
// Rekord jest niemutowalny, nie ma ścieżki edycji ani usuwania; przy
// usunięciu zgłoszenia historia odpowiedzi celowo zostaje w tabeli.
type SubmissionReply struct {
	BaseModel
	SubmissionID uint   `gorm:"not null;index" json:"submission_id"`
	Subject      string `gorm:"type:varchar(255);not null" json:"subject"`
	Message      string `gorm:"type:text;not null" json:"message"`
	SentByID     uint   `gorm:"index" json:"sent_by_id"`
	SentByName   string `gorm:"type:varchar(150)" json:"sent_by_name"`
}
