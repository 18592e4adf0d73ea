package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"ledkino.pl/configs"
	"ledkino.pl/middlewares"
	"ledkino.pl/pkg/responses"
	"ledkino.pl/services"
)

// SetupRoutes rejestruje wszystkie trasy i middleware aplikacji.
// Serwis mediów przychodzi z zewnątrz, bo wymaga połączenia z object storage
// zestawianego przy starcie.
func SetupRoutes(app *fiber.App, mediaService services.IMediaService) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSession())

	app.Static("/static", "./static")

	registerPublicRoutes(app)
	registerAdminRoutes(app, mediaService)

	// 404 na końcu, łapie wszystko, co nie pasuje do tras wyżej.
	app.Use(notFoundHandler)
}

// initializeSession wkłada magazyn sesji do locals, żeby handlery logowania
// i AuthMiddleware korzystały z jednej instancji.
func initializeSession() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals(middlewares.LocalsSessionStore, sessionStore)
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return responses.NotFound(c, "Zasób nie istnieje")
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title": "Strona nie istnieje",
		}, "layouts/main")
	}
}
