package domain

import "errors"

// Errores de dominio (sin dependencias externas). El pipeline HTTP los traduce
// a códigos de estado: no autenticado/no autorizado -> 403, no encontrado -> 404.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// StatusError error de un store dependiente que trae su propio código de estado.
// Se propaga tal cual en la respuesta; sin código, el pipeline responde 500.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// NewStatusError construye un StatusError.
func NewStatusError(status int, message string) *StatusError {
	return &StatusError{Status: status, Message: message}
}
