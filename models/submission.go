package models

import "time"

// SubmissionStatus status obsługi zapytania ofertowego.
// Zbiór jest płaski, każdy status może przejść w każdy inny. Jedyna
// automatyczna zmiana to NEW → CONTACTED po wysłaniu pierwszej odpowiedzi.
type SubmissionStatus string

const (
	SubmissionStatusNew        SubmissionStatus = "NEW"         // świeże zgłoszenie z formularza
	SubmissionStatusInProgress SubmissionStatus = "IN_PROGRESS" // w trakcie wyceny
	SubmissionStatusContacted  SubmissionStatus = "CONTACTED"   // wysłano odpowiedź do klienta
	SubmissionStatusClosed     SubmissionStatus = "CLOSED"      // temat zamknięty
)

// Valid sprawdza przynależność do czterowartościowego zbioru statusów.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusNew, SubmissionStatusInProgress, SubmissionStatusContacted, SubmissionStatusClosed:
		return true
	}
	return false
}

// EventType rodzaj wydarzenia, dla którego klient pyta o ekran.
type EventType string

const (
	EventTypeCity      EventType = "city"
	EventTypeCorporate EventType = "corporate"
	EventTypeHotel     EventType = "hotel"
	EventTypeFestival  EventType = "festival"
)

// Valid sprawdza przynależność do zbioru typów wydarzeń.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeCity, EventTypeCorporate, EventTypeHotel, EventTypeFestival:
		return true
	}
	return false
}

// Label zwraca polską etykietę typu wydarzenia pokazywaną w panelu i mailach.
func (t EventType) Label() string {
	switch t {
	case EventTypeCity:
		return "Event Miejski"
	case EventTypeCorporate:
		return "Event Firmowy"
	case EventTypeHotel:
		return "Event Hotelowy"
	case EventTypeFestival:
		return "Festiwal Plenerowy"
	}
	return string(t)
}

// Submission jedno zapytanie ofertowe z publicznego formularza.
type Submission struct {
	BaseModel
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string `gorm:"type:varchar(150);not null;index" json:"email"`
	Phone     string `gorm:"type:varchar(30)" json:"phone"`

	EventType     EventType  `gorm:"type:varchar(20);not null" json:"event_type"`
	AudienceSize  int        `gorm:"not null" json:"audience_size"`
	PreferredDate *time.Time `gorm:"type:date" json:"preferred_date,omitempty"`
	WantsPopcorn  bool       `gorm:"default:false" json:"wants_popcorn"`
	WantsChairs   bool       `gorm:"default:false" json:"wants_chairs"`
	WantsLicense  bool       `gorm:"default:false" json:"wants_license"`
	Message       string     `gorm:"type:text" json:"message"`

	// EstimatedLevel to etykieta pakietu wyliczana przy przyjęciu zgłoszenia
	// z liczby widzów; zapisujemy ją, żeby lista w panelu nie liczyła nic w locie.
	EstimatedLevel string           `gorm:"type:varchar(50)" json:"estimated_level"`
	Status         SubmissionStatus `gorm:"type:varchar(20);not null;default:'NEW';index" json:"status"`
}

// EstimateLevel dobiera pakiet orientacyjny do liczby widzów.
func EstimateLevel(audienceSize int) string {
	switch {
	case audienceSize <= 150:
		return "Pakiet Kameralny"
	case audienceSize <= 400:
		return "Pakiet Standard"
	case audienceSize <= 800:
		return "Pakiet Premium"
	}
	return "Pakiet Mega"
}

// EstimatePrice wylicza orientacyjną cenę netto (PLN) pokazywaną w mailu
// do biura. To tylko wskazówka handlowa, nie oferta.
func (s *Submission) EstimatePrice() int {
	price := 0
	switch {
	case s.AudienceSize <= 150:
		price = 4500
	case s.AudienceSize <= 400:
		price = 7500
	case s.AudienceSize <= 800:
		price = 12000
	default:
		price = 18000
	}
	if s.WantsPopcorn {
		price += 1200
	}
	if s.WantsChairs {
		price += 8 * s.AudienceSize
	}
	if s.WantsLicense {
		price += 2000
	}
	return price
}

// FullName imię i nazwisko zgłaszającego.
func (s *Submission) FullName() string {
	return s.FirstName + " " + s.LastName
}
