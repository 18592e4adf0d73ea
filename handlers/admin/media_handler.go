package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/pkg/responses"
	"ledkino.pl/services"
)

// MediaHandler biblioteka obrazów w panelu.
type MediaHandler struct {
	service services.IMediaService
}

// NewMediaHandler tworzy handler mediów na podanym serwisie (serwis wymaga
// skonfigurowanego storage, więc powstaje przy starcie aplikacji).
func NewMediaHandler(service services.IMediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// List obsługuje GET /api/admin/media.
func (h *MediaHandler) List(c *fiber.Ctx) error {
	assets, err := h.service.List(c.UserContext())
	if err != nil {
		configslog.Log.Error("MediaHandler.List: błąd serwisu", zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.OK(c, assets)
}

// Upload obsługuje POST /api/admin/media (multipart, pole "file").
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Brak pliku w żądaniu")
	}
	altText := c.FormValue("alt_text")

	asset, err := h.service.Upload(c.UserContext(), fileHeader, altText)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMediaTooLarge),
			errors.Is(err, services.ErrMediaBadMimeType),
			errors.Is(err, services.ErrMediaInvalidInput):
			return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, err.Error())
		}
		configslog.Log.Error("MediaHandler.Upload: błąd serwisu", zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.Created(c, asset)
}

type updateMediaRequest struct {
	AltText string `json:"alt_text"`
}

// Update obsługuje PUT /api/admin/media/:id, zmiana tekstu alternatywnego.
func (h *MediaHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe ID pliku")
	}
	var req updateMediaRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe dane żądania")
	}

	asset, err := h.service.UpdateAlt(c.UserContext(), uint(id), req.AltText)
	if err != nil {
		if errors.Is(err, services.ErrMediaNotFound) {
			return responses.NotFound(c, err.Error())
		}
		configslog.Log.Error("MediaHandler.Update: błąd serwisu", zap.Int("id", id), zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.OK(c, asset)
}

// Delete obsługuje DELETE /api/admin/media/:id.
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe ID pliku")
	}

	if err := h.service.Delete(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrMediaNotFound) {
			return responses.NotFound(c, err.Error())
		}
		configslog.Log.Error("MediaHandler.Delete: błąd serwisu", zap.Int("id", id), zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.OK(c, fiber.Map{"deleted": true})
}
