package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ledkino.pl/configs/configslog"
	"ledkino.pl/models"
	"ledkino.pl/pkg/responses"
	"ledkino.pl/pkg/validation"
	"ledkino.pl/services"
)

// ContactHandler przyjmuje zapytania ofertowe z publicznego formularza.
type ContactHandler struct {
	service services.ISubmissionService
}

// NewContactHandler tworzy handler formularza kontaktowego.
func NewContactHandler() *ContactHandler {
	return &ContactHandler{service: services.NewSubmissionService()}
}

// contactRequest DTO formularza. Wszystkie pola kontaktowe są wymagane
// już na poziomie formularza, więc tu tylko je potwierdzamy.
type contactRequest struct {
	FirstName     string `json:"first_name" validate:"required,max=100"`
	LastName      string `json:"last_name" validate:"required,max=100"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,max=30"`
	EventType     string `json:"event_type" validate:"required,oneof=city corporate hotel festival"`
	AudienceSize  int    `json:"audience_size" validate:"required,gt=0"`
	PreferredDate string `json:"preferred_date" validate:"omitempty"`
	WantsPopcorn  bool   `json:"wants_popcorn"`
	WantsChairs   bool   `json:"wants_chairs"`
	WantsLicense  bool   `json:"wants_license"`
	Message       string `json:"message" validate:"required"`
}

// Create obsługuje POST /api/contact.
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeInvalidInput, "Nieprawidłowe dane formularza")
	}
	if fields := validation.Check(req); fields != nil {
		return responses.ValidationError(c, fields)
	}

	submission := &models.Submission{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		EventType:    models.EventType(req.EventType),
		AudienceSize: req.AudienceSize,
		WantsPopcorn: req.WantsPopcorn,
		WantsChairs:  req.WantsChairs,
		WantsLicense: req.WantsLicense,
		Message:      req.Message,
	}
	if req.PreferredDate != "" {
		date, err := time.Parse("2006-01-02", req.PreferredDate)
		if err != nil {
			return responses.ValidationError(c, map[string]string{"preferred_date": "data w formacie RRRR-MM-DD"})
		}
		submission.PreferredDate = &date
	}

	created, err := h.service.Create(c.UserContext(), submission)
	if err != nil {
		configslog.Log.Error("ContactHandler.Create: błąd serwisu", zap.Error(err))
		return responses.UpstreamError(c)
	}
	return responses.Created(c, created)
}
