package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrCapacityExceeded = errors.New("la cantidad excede el stock máximo")
)
