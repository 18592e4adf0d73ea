package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/middlewares"
	"ledkino.pl/models"
	"ledkino.pl/pkg/responses"
	"ledkino.pl/pkg/validation"
	"ledkino.pl/services"
)

// UserHandler zarządzanie kontami panelu. Listowanie, zakładanie i usuwanie
// kont wymaga admina; odczyt i edycja własnego konta są dostępne dla editora
// (reguły egzekwuje serwis, handler tylko tłumaczy błędy na kody HTTP).
type UserHandler struct {
	service services.IUserService
}

// NewUserHandler tworzy handler kont.
func NewUserHandler() *UserHandler {
	return &UserHandler{service: services.NewUserService()}
}

func mapUserError(c *fiber.Ctx, err error, logContext string) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		return responses.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUserForbidden), errors.Is(err, services.ErrUserSelfDelete):
		return responses.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrUserEmailTaken), errors.Is(err, services.ErrUserInvalidInput):
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, err.Error())
	}
	configslog.Log.Error(logContext, zap.Error(err))
	return responses.UpstreamError(c)
}

// List obsługuje GET /api/admin/users.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List(c.UserContext(), middlewares.CurrentUser(c))
	if err != nil {
		return mapUserError(c, err, "UserHandler.List: błąd serwisu")
	}
	return responses.OK(c, users)
}

// Get obsługuje GET /api/admin/users/:id.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe ID użytkownika")
	}
	user, err := h.service.GetByID(c.UserContext(), middlewares.CurrentUser(c), uint(id))
	if err != nil {
		return mapUserError(c, err, "UserHandler.Get: błąd serwisu")
	}
	return responses.OK(c, user)
}

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"max=150"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin editor"`
}

// Create obsługuje POST /api/admin/users.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe dane żądania")
	}
	if fields := validation.Check(req); fields != nil {
		return responses.ValidationError(c, fields)
	}

	user, err := h.service.Create(c.UserContext(), middlewares.CurrentUser(c),
		req.Email, req.Name, req.Password, models.UserRole(req.Role))
	if err != nil {
		return mapUserError(c, err, "UserHandler.Create: błąd serwisu")
	}
	return responses.Created(c, user)
}

type updateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Name     *string `json:"name" validate:"omitempty,max=150"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin editor"`
	IsActive *bool   `json:"is_active"`
}

// Update obsługuje PUT /api/admin/users/:id.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe ID użytkownika")
	}
	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe dane żądania")
	}
	if fields := validation.Check(req); fields != nil {
		return responses.ValidationError(c, fields)
	}

	input := services.UpdateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		IsActive: req.IsActive,
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		input.Role = &role
	}

	user, err := h.service.Update(c.UserContext(), middlewares.CurrentUser(c), uint(id), input)
	if err != nil {
		return mapUserError(c, err, "UserHandler.Update: błąd serwisu")
	}
	return responses.OK(c, user)
}

// Delete obsługuje DELETE /api/admin/users/:id.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe ID użytkownika")
	}
	if err := h.service.Delete(c.UserContext(), middlewares.CurrentUser(c), uint(id)); err != nil {
		return mapUserError(c, err, "UserHandler.Delete: błąd serwisu")
	}
	return responses.OK(c, fiber.Map{"deleted": true})
}
