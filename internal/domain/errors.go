package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)

// FieldViolation es una regla incumplida sobre un campo del request.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError agrupa TODAS las violaciones de un request: la validación
// no se detiene en la primera, para que el caller reciba el conjunto completo.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError crea un acumulador de violaciones vacío.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add registra una violación sobre un campo.
func (e *ValidationError) Add(field, reason string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Reason: reason})
}

// HasViolations indica si se acumuló al menos una violación.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validación fallida"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Reason)
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// IllegalTransitionError indica un cambio de estatus no permitido por la
// tabla de transiciones. Se genera antes de tocar cualquier stock.
type IllegalTransitionError struct {
	From string
	To   string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("transición de estatus ilegal: %s -> %s", e.From, e.To)
}
