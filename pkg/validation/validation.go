// Package validation walidacja DTO na go-playground/validator z komunikatami
// per pole, gotowymi do odpowiedzi 400.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Nazwy pól w komunikatach biorą się z tagu json, żeby front
	// dostawał te same klucze, które wysłał.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// Check waliduje strukturę wg tagów `validate`. Zwraca mapę pole→komunikat;
// pusta mapa (nil) oznacza poprawne dane.
func Check(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": "nieprawidłowe dane"}
	}
	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "pole jest wymagane"
	case "email":
		return "nieprawidłowy adres e-mail"
	case "gt":
		return fmt.Sprintf("wartość musi być większa niż %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("dozwolone wartości: %s", fe.Param())
	case "min":
		return fmt.Sprintf("minimalna długość: %s", fe.Param())
	case "max":
		return fmt.Sprintf("maksymalna długość: %s", fe.Param())
	}
	return "nieprawidłowa wartość"
}
