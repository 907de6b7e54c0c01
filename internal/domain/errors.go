package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrConflict cubre violaciones de unicidad y de integridad referencial.
	ErrConflict = errors.New("conflicto con el estado actual")
)

// ValidationError error de entrada con el mensaje que se devuelve tal cual al cliente.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError construye un ValidationError.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
