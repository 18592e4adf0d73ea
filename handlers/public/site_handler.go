package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/models"
	"ledkino.pl/services"
)

// SiteHandler renderuje publiczną stronę główną. Treść sekcji i ustawienia
// SEO są doczytywane z CMS-a przy każdym żądaniu, bez cache, zgodnie
// z charakterem tej strony (niski ruch, natychmiastowa widoczność zmian).
type SiteHandler struct {
	contentService services.IContentService
	settingService services.ISettingService
}

// NewSiteHandler tworzy handler strony publicznej.
func NewSiteHandler() *SiteHandler {
	return &SiteHandler{
		contentService: services.NewContentService(),
		settingService: services.NewSettingService(),
	}
}

// Home obsługuje GET /.
func (h *SiteHandler) Home(c *fiber.Ctx) error {
	sections, err := h.contentService.GetAll(c.UserContext())
	if err != nil {
		configslog.Log.Error("SiteHandler.Home: błąd odczytu treści", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
			"Title": "Błąd serwera",
		}, "layouts/main")
	}
	settings, err := h.settingService.GetAll(c.UserContext())
	if err != nil {
		configslog.Log.Error("SiteHandler.Home: błąd odczytu ustawień", zap.Error(err))
		settings = map[string]string{}
	}

	// Sekcje trafiają do szablonu jako mapy, żeby szablon nie znał
	// struktury blobów.
	content := make(map[string]map[string]interface{}, len(sections))
	for _, section := range sections {
		var data map[string]interface{}
		if err := json.Unmarshal(section.Data, &data); err != nil {
			configslog.Log.Warn("SiteHandler.Home: sekcja z nieczytelnym JSON-em",
				zap.String("section", section.Section), zap.Error(err))
			continue
		}
		content[section.Section] = data
	}

	return c.Render("index", fiber.Map{
		"Title":       settings[models.SettingSiteTitle],
		"Description": settings[models.SettingSiteDescription],
		"Keywords":    settings[models.SettingSiteKeywords],
		"Settings":    settings,
		"Content":     content,
	}, "layouts/main")
}
