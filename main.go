package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"ledkino.pl/configs"
	"ledkino.pl/configs/configslog"
	"ledkino.pl/pkg/osstorage"
	"ledkino.pl/routes"
	"ledkino.pl/services"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	configs.LoadEnv()

	if err := configs.ConnectDB(); err != nil {
		configslog.SLog.Fatalf("Błąd połączenia z bazą: %v", err)
	}
	defer configs.CloseDB()

	storage, err := osstorage.NewClient(configs.LoadOSSConfig())
	if err != nil {
		configslog.SLog.Fatalf("Błąd konfiguracji object storage: %v", err)
	}
	mediaService := services.NewMediaService(storage)

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:        engine,
		AppName:      "ledkino.pl",
		ErrorHandler: fiberErrorHandler,
	})

	routes.SetupRoutes(app, mediaService)

	// Zamknięcie na SIGINT/SIGTERM, najpierw przestajemy przyjmować
	// żądania, potem main domknie bazę przez defer.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Zamykam serwer...")
		_ = app.Shutdown()
	}()

	addr := ":" + configs.GetEnv("APP_PORT", "3000")
	configslog.SLog.Infof("Serwer nasłuchuje na %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("Serwer zakończył pracę błędem", zap.Error(err))
	}
}

// fiberErrorHandler łapie błędy, których nie obsłużył żaden handler.
// Zwraca generyczny JSON, szczegóły zostają w logu.
func fiberErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code >= 500 {
		configslog.Log.Error("Nieobsłużony błąd żądania",
			zap.String("path", c.Path()), zap.Error(err))
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   fiber.Map{"code": "UPSTREAM_FAILURE", "message": "Wystąpił błąd serwera"},
		})
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   fiber.Map{"code": "REQUEST_ERROR", "message": err.Error()},
	})
}
