package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"ledkino.pl/models"
	"ledkino.pl/pkg/responses"
	"ledkino.pl/repositories"
)

// Klucze w locals. Zalogowany użytkownik jest rozwiązywany per żądanie
// i przekazywany jawnie przez locals, nigdy przez stan globalny.
const (
	LocalsSessionStore = "session_store"
	LocalsCurrentUser  = "current_user"
	SessionKeyUserID   = "user_id"
)

// GetSessionStore wyciąga magazyn sesji z locals (wpisany w routerze).
func GetSessionStore(c *fiber.Ctx) *session.Store {
	store, _ := c.Locals(LocalsSessionStore).(*session.Store)
	return store
}

// CurrentUser zwraca użytkownika rozwiązanego przez AuthMiddleware.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(LocalsCurrentUser).(*models.User)
	return user
}

// AuthMiddleware wymaga ważnej sesji. Użytkownik jest doczytywany z bazy
// przy każdym żądaniu, żeby zmiana roli lub dezaktywacja konta działały
// natychmiast, a nie dopiero po wygaśnięciu sesji. Repozytorium powstaje
// raz, przy rejestracji tras.
func AuthMiddleware() fiber.Handler {
	return authWithRepo(repositories.NewUserRepository())
}

func authWithRepo(userRepo repositories.IUserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := GetSessionStore(c)
		if store == nil {
			return responses.Unauthorized(c)
		}
		sess, err := store.Get(c)
		if err != nil {
			return responses.Unauthorized(c)
		}
		userID, ok := sess.Get(SessionKeyUserID).(uint)
		if !ok || userID == 0 {
			return responses.Unauthorized(c)
		}

		user, err := userRepo.FindByID(c.UserContext(), userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				_ = sess.Destroy()
				return responses.Unauthorized(c)
			}
			return responses.UpstreamError(c)
		}
		if !user.IsActive {
			_ = sess.Destroy()
			return responses.Unauthorized(c)
		}

		c.Locals(LocalsCurrentUser, user)
		return c.Next()
	}
}

// RequireAdmin przepuszcza wyłącznie rolę admin. Zakłada, że wcześniej
// w łańcuchu stoi AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return responses.Unauthorized(c)
		}
		if user.Role != models.RoleAdmin {
			return responses.Forbidden(c, "Ta operacja wymaga roli administratora")
		}
		return c.Next()
	}
}
