package routes

import (
	"github.com/gofiber/fiber/v2"

	admin_handlers "ledkino.pl/handlers/admin"
	"ledkino.pl/middlewares"
	"ledkino.pl/services"
)

// registerAdminRoutes API panelu pod /api/admin.
// Zgłoszenia, treści i media są dostępne dla każdego zalogowanego;
// ustawienia oraz operacje zbiorcze na kontach wymagają admina.
// GET/PUT /users/:id zostają za samym AuthMiddleware, editor zarządza
// własnym kontem, a ograniczenie do własnego ID egzekwuje serwis.
func registerAdminRoutes(app *fiber.App, mediaService services.IMediaService) {
	authHandler := admin_handlers.NewAuthHandler()
	submissionHandler := admin_handlers.NewSubmissionHandler()
	contentHandler := admin_handlers.NewContentHandler()
	settingHandler := admin_handlers.NewSettingHandler()
	mediaHandler := admin_handlers.NewMediaHandler(mediaService)
	userHandler := admin_handlers.NewUserHandler()

	adminGroup := app.Group("/api/admin")

	// Logowanie: jedyne trasy bez AuthMiddleware.
	adminGroup.Post("/login", authHandler.Login)

	authGroup := adminGroup.Group("", middlewares.AuthMiddleware())
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	// Zapytania ofertowe.
	authGroup.Get("/submissions", submissionHandler.List)
	authGroup.Patch("/submissions/:id", submissionHandler.UpdateStatus)
	authGroup.Delete("/submissions/:id", submissionHandler.Delete)
	authGroup.Post("/submissions/:id/reply", submissionHandler.Reply)
	authGroup.Get("/submissions/:id/replies", submissionHandler.ListReplies)

	// Treści strony.
	authGroup.Get("/content", contentHandler.List)
	authGroup.Post("/content", contentHandler.Upsert)

	// Biblioteka mediów.
	authGroup.Get("/media", mediaHandler.List)
	authGroup.Post("/media", mediaHandler.Upload)
	authGroup.Put("/media/:id", mediaHandler.Update)
	authGroup.Delete("/media/:id", mediaHandler.Delete)

	// Ustawienia strony (tylko admin).
	settingsGroup := authGroup.Group("/settings", middlewares.RequireAdmin())
	settingsGroup.Get("/", settingHandler.List)
	settingsGroup.Post("/", settingHandler.Upsert)

	// Konta użytkowników.
	authGroup.Get("/users", middlewares.RequireAdmin(), userHandler.List)
	authGroup.Post("/users", middlewares.RequireAdmin(), userHandler.Create)
	authGroup.Get("/users/:id", userHandler.Get)
	authGroup.Put("/users/:id", userHandler.Update)
	authGroup.Delete("/users/:id", middlewares.RequireAdmin(), userHandler.Delete)
}
