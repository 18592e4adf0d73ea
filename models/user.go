package models

// UserRole określa poziom uprawnień w panelu.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"  // pełny dostęp, zarządza użytkownikami i ustawieniami
	RoleEditor UserRole = "editor" // dostęp tylko do własnego konta + treści
)

// Valid sprawdza, czy rola należy do dozwolonego zbioru.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// User konto pracownika obsługującego panel.
type User struct {
	BaseModel
	Email        string   `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Name         string   `gorm:"type:varchar(150)" json:"name"`
	PasswordHash string   `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'editor';index" json:"role"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`
}

// DisplayName zwraca nazwę do podpisu odpowiedzi: imię, a gdy brak, e-mail.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
