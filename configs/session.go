package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession tworzy magazyn sesji oparty o podpisane cookie.
// Panel administracyjny korzysta z sesji zamiast tokenów, zgodnie z tym,
// że jest to klasyczna aplikacja z logowaniem formularzem.
func SetupSession() *session.Store {
	return session.New(session.Config{
		CookieName:     GetEnv("SESSION_COOKIE_NAME", "ledkino_session"),
		Expiration:     time.Duration(GetEnvInt("SESSION_EXPIRATION_HOURS", 24)) * time.Hour,
		CookieHTTPOnly: true,
		CookieSecure:   GetEnvBool("SESSION_COOKIE_SECURE", false),
		CookieSameSite: "Lax",
		CookiePath:     "/",
	})
}
