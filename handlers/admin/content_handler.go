package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/pkg/responses"
	"ledkino.pl/services"
)

// ContentHandler edycja sekcji strony w panelu.
type ContentHandler struct {
	service services.IContentService
}

// NewContentHandler tworzy handler treści.
func NewContentHandler() *ContentHandler {
	return &ContentHandler{service: services.NewContentService()}
}

// List obsługuje GET /api/admin/content.
func (h *ContentHandler) List(c *fiber.Ctx) error {
	sections, err := h.service.GetAll(c.UserContext())
	if err != nil {
		configslog.Log.Error("ContentHandler.List: błąd serwisu", zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.OK(c, sections)
}

type upsertContentRequest struct {
	Section string          `json:"section"`
	Data    json.RawMessage `json:"data"`
}

// Upsert obsługuje POST /api/admin/content.
func (h *ContentHandler) Upsert(c *fiber.Ctx) error {
	var req upsertContentRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe dane żądania")
	}
	if req.Section == "" {
		return responses.ValidationError(c, map[string]string{"section": "pole jest wymagane"})
	}
	if len(req.Data) == 0 {
		return responses.ValidationError(c, map[string]string{"data": "pole jest wymagane"})
	}

	content, err := h.service.Upsert(c.UserContext(), req.Section, req.Data)
	if err != nil {
		if errors.Is(err, services.ErrContentInvalidInput) {
			return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, err.Error())
		}
		configslog.Log.Error("ContentHandler.Upsert: błąd serwisu", zap.String("section", req.Section), zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.OK(c, content)
}
