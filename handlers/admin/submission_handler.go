package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/middlewares"
	"ledkino.pl/models"
	"ledkino.pl/pkg/queryparams"
	"ledkino.pl/pkg/responses"
	"ledkino.pl/pkg/validation"
	"ledkino.pl/services"
)

// SubmissionHandler obsługa zapytań ofertowych w panelu.
// Każdy zalogowany użytkownik może działać na zgłoszeniach, ograniczenia
// ról dotyczą ustawień i kont, nie leadów.
type SubmissionHandler struct {
	service services.ISubmissionService
}

// NewSubmissionHandler tworzy handler zgłoszeń.
func NewSubmissionHandler() *SubmissionHandler {
	return &SubmissionHandler{service: services.NewSubmissionService()}
}

// List obsługuje GET /api/admin/submissions.
func (h *SubmissionHandler) List(c *fiber.Ctx) error {
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}

	result, err := h.service.List(c.UserContext(), params)
	if err != nil {
		if errors.Is(err, services.ErrSubmissionInvalidStatus) {
			return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, err.Error())
		}
		configslog.Log.Error("SubmissionHandler.List: błąd serwisu", zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.OK(c, result)
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW IN_PROGRESS CONTACTED CLOSED"`
}

// UpdateStatus obsługuje PATCH /api/admin/submissions/:id.
func (h *SubmissionHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe ID zgłoszenia")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe dane żądania")
	}
	if fields := validation.Check(req); fields != nil {
		return responses.ValidationError(c, fields)
	}

	updated, err := h.service.UpdateStatus(c.UserContext(), uint(id), models.SubmissionStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubmissionNotFound):
			return responses.NotFound(c, err.Error())
		case errors.Is(err, services.ErrSubmissionInvalidStatus):
			return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, err.Error())
		}
		configslog.Log.Error("SubmissionHandler.UpdateStatus: błąd serwisu", zap.Int("id", id), zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.OK(c, updated)
}

// Delete obsługuje DELETE /api/admin/submissions/:id.
func (h *SubmissionHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe ID zgłoszenia")
	}

	if err := h.service.Delete(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			return responses.NotFound(c, err.Error())
		}
		configslog.Log.Error("SubmissionHandler.Delete: błąd serwisu", zap.Int("id", id), zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.OK(c, fiber.Map{"deleted": true})
}

type replyRequest struct {
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}

// Reply obsługuje POST /api/admin/submissions/:id/reply.
func (h *SubmissionHandler) Reply(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe ID zgłoszenia")
	}

	var req replyRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe dane żądania")
	}
	if fields := validation.Check(req); fields != nil {
		return responses.ValidationError(c, fields)
	}

	sender := middlewares.CurrentUser(c)
	if sender == nil {
		return responses.Unauthorized(c)
	}

	reply, err := h.service.Reply(c.UserContext(), uint(id), sender.ID, req.Subject, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSubmissionNotFound):
			return responses.NotFound(c, err.Error())
		case errors.Is(err, services.ErrSubmissionInvalidInput):
			return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, err.Error())
		case errors.Is(err, services.ErrSubmissionSenderNotFound):
			// Konto wysyłającego zniknęło między middleware a serwisem.
			return responses.Unauthorized(c)
		}
		configslog.Log.Error("SubmissionHandler.Reply: błąd serwisu", zap.Int("id", id), zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.Created(c, reply)
}

// ListReplies obsługuje GET /api/admin/submissions/:id/replies.
func (h *SubmissionHandler) ListReplies(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe ID zgłoszenia")
	}

	replies, err := h.service.ListReplies(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrSubmissionNotFound) {
			return responses.NotFound(c, err.Error())
		}
		configslog.Log.Error("SubmissionHandler.ListReplies: błąd serwisu", zap.Int("id", id), zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.OK(c, replies)
}
