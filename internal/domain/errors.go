package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnachievableMargin = errors.New("margen objetivo inalcanzable (>= 100%)")
	ErrQuoteFinalized     = errors.New("la cotización está finalizada y no admite cambios de precio")
	ErrQuoteComputation   = errors.New("no se pudo calcular la cotización")
)
