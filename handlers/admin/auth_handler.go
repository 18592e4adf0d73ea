package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/middlewares"
	"ledkino.pl/pkg/responses"
	"ledkino.pl/pkg/validation"
	"ledkino.pl/services"
)

// AuthHandler logowanie i sesja panelu.
type AuthHandler struct {
	authService services.IAuthService
}

// NewAuthHandler tworzy handler logowania.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login obsługuje POST /api/admin/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe dane logowania")
	}
	if fields := validation.Check(req); fields != nil {
		return responses.ValidationError(c, fields)
	}

	user, err := h.authService.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrAccountInactive) {
			return responses.Error(c, fiber.StatusUnauthorized, responses.CodeUnauthorized, err.Error())
		}
		configslog.Log.Error("AuthHandler.Login: błąd serwisu", zap.Error(err))
		return responses.UpstreamError(c)
	}

	store := middlewares.GetSessionStore(c)
	if store == nil {
		return responses.UpstreamError(c)
	}
	sess, err := store.Get(c)
	if err != nil {
		return responses.UpstreamError(c)
	}
	sess.Set(middlewares.SessionKeyUserID, user.ID)
	if err := sess.Save(); err != nil {
		configslog.Log.Error("AuthHandler.Login: zapis sesji nie powiódł się", zap.Error(err))
		return responses.UpstreamError(c)
	}

	configslog.Log.Info("Zalogowano do panelu", zap.Uint("user_id", user.ID))
	return responses.OK(c, user)
}

// Logout obsługuje POST /api/admin/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	store := middlewares.GetSessionStore(c)
	if store != nil {
		if sess, err := store.Get(c); err == nil {
			_ = sess.Destroy()
		}
	}
	return responses.OK(c, fiber.Map{"logged_out": true})
}

// Me obsługuje GET /api/admin/me, zwraca zalogowanego użytkownika.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return responses.OK(c, middlewares.CurrentUser(c))
}
