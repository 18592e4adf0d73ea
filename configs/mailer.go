package configs

// MailerConfig przechowuje ustawienia wysyłki e-maili transakcyjnych.
type MailerConfig struct {
	Enabled    bool
	SMTPHost   string
	SMTPPort   int
	Username   string
	Password   string
	FromEmail  string
	FromName   string
	AdminEmail string // adres, na który trafiają powiadomienia o nowych zapytaniach
}

// LoadMailerConfig buduje konfigurację mailera ze zmiennych środowiskowych.
// Przy Enabled=false wiadomości są tylko logowane (tryb developerski).
func LoadMailerConfig() MailerConfig {
	return MailerConfig{
		Enabled:    GetEnvBool("MAIL_ENABLED", false),
		SMTPHost:   GetEnv("MAIL_SMTP_HOST", "localhost"),
		SMTPPort:   GetEnvInt("MAIL_SMTP_PORT", 587),
		Username:   GetEnv("MAIL_USERNAME", ""),
		Password:   GetEnv("MAIL_PASSWORD", ""),
		FromEmail:  GetEnv("MAIL_FROM_EMAIL", "kontakt@ledkino.pl"),
		FromName:   GetEnv("MAIL_FROM_NAME", "LED Kino Plenerowe"),
		AdminEmail: GetEnv("MAIL_ADMIN_EMAIL", "biuro@ledkino.pl"),
	}
}

// OSSConfig przechowuje dostęp do object storage dla biblioteki mediów.
type OSSConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	PublicBaseURL   string // baza publicznych adresów plików (CDN lub endpoint bucketa)
}

// LoadOSSConfig buduje konfigurację object storage ze zmiennych środowiskowych.
func LoadOSSConfig() OSSConfig {
	return OSSConfig{
		Endpoint:        GetEnv("OSS_ENDPOINT", ""),
		AccessKeyID:     GetEnv("OSS_ACCESS_KEY_ID", ""),
		AccessKeySecret: GetEnv("OSS_ACCESS_KEY_SECRET", ""),
		Bucket:          GetEnv("OSS_BUCKET", "ledkino-media"),
		PublicBaseURL:   GetEnv("OSS_PUBLIC_BASE_URL", ""),
	}
}
