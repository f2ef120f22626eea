package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida; las reglas viven en los tags de los structs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError error de validación de entrada, detectado antes de tocar el almacén.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// newValidationError formatea errores del validador en un mensaje por campo.
func newValidationError(err error) *ValidationError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Message: err.Error()}
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("campo '%s' inválido (regla %s)", fe.Field(), fe.Tag()))
	}
	return &ValidationError{Message: strings.Join(parts, "; ")}
}
