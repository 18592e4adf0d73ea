package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/pkg/responses"
	"ledkino.pl/services"
)

// SettingHandler edycja ustawień strony (SEO, kontakt), tylko admin.
type SettingHandler struct {
	service services.ISettingService
}

// NewSettingHandler tworzy handler ustawień.
func NewSettingHandler() *SettingHandler {
	return &SettingHandler{service: services.NewSettingService()}
}

// List obsługuje GET /api/admin/settings.
func (h *SettingHandler) List(c *fiber.Ctx) error {
	settings, err := h.service.GetAll(c.UserContext())
	if err != nil {
		configslog.Log.Error("SettingHandler.List: błąd serwisu", zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.OK(c, settings)
}

type upsertSettingsRequest struct {
	Settings map[string]string `json:"settings"`
}

// Upsert obsługuje POST /api/admin/settings, zapis wielu kluczy naraz,
// bo panel wysyła cały formularz ustawień jednym żądaniem.
func (h *SettingHandler) Upsert(c *fiber.Ctx) error {
	var req upsertSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe dane żądania")
	}
	if len(req.Settings) == 0 {
		return responses.ValidationError(c, map[string]string{"settings": "pole jest wymagane"})
	}

	for key, value := range req.Settings {
		if err := h.service.Upsert(c.UserContext(), key, value); err != nil {
			if errors.Is(err, services.ErrSettingInvalidInput) {
				return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, err.Error())
			}
			configslog.Log.Error("SettingHandler.Upsert: błąd serwisu", zap.String("key", key), zap.Error(err))
			return responses.UpstreamError(c)
		}
	}

	settings, err := h.service.GetAll(c.UserContext())
	if err != nil {
		configslog.Log.Error("SettingHandler.Upsert: błąd odczytu po zapisie", zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.OK(c, settings)
}
