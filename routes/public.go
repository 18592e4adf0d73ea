package routes

import (
	"github.com/gofiber/fiber/v2"

	public_handlers "ledkino.pl/handlers/public"
)

// registerPublicRoutes strona główna i formularz kontaktowy, bez logowania.
func registerPublicRoutes(app *fiber.App) {
	siteHandler := public_handlers.NewSiteHandler()
	contactHandler := public_handlers.NewContactHandler()

	app.Get("/", siteHandler.Home)
	app.Post("/api/contact", contactHandler.Create)
}
