// Package responses ujednolicona koperta JSON dla API panelu.
// Żaden handler nie zwraca surowego błędu upstreamu do przeglądarki,
// szczegóły lądują w logu, klient dostaje kod i komunikat po polsku.
package responses

import "github.com/gofiber/fiber/v2"

// Kody błędów używane przez API.
const (
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeValidation      = "VALIDATION_FAILURE"
	CodeUpstreamFailure = "UPSTREAM_FAILURE"
	CodeInvalidInput    = "INVALID_INPUT"
)

type errorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// OK zwraca odpowiedź sukcesu z danymi.
func OK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": data})
}

// Created zwraca 201 z utworzonym rekordem.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

// Error zwraca kopertę błędu z podanym statusem HTTP.
func Error(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   errorBody{Code: code, Message: message},
	})
}

// ValidationError zwraca 400 z komunikatami per pole.
func ValidationError(c *fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error": errorBody{
			Code:    CodeValidation,
			Message: "Formularz zawiera błędy",
			Fields:  fields,
		},
	})
}

// Unauthorized zwraca 401, brak ważnej sesji.
func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, CodeUnauthorized, "Wymagane zalogowanie")
}

// Forbidden zwraca 403 z czytelnym powodem.
func Forbidden(c *fiber.Ctx, reason string) error {
	return Error(c, fiber.StatusForbidden, CodeForbidden, reason)
}

// NotFound zwraca 404 dla nieistniejącego zasobu.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, CodeNotFound, message)
}

// UpstreamError zwraca 500 z generycznym komunikatem.
func UpstreamError(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, CodeUpstreamFailure, "Wystąpił błąd serwera, spróbuj ponownie później")
}
