package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El caller HTTP distingue errores de parámetros (4xx) de inconsistencias de datos (409).
var (
	ErrNotFound                = errors.New("recurso no encontrado")
	ErrInvalidInput            = errors.New("entrada inválida")
	ErrInvalidPeriod           = errors.New("la fecha final debe ser posterior a la inicial")
	ErrInvalidArrival          = errors.New("la llegada no puede ser anterior a la foto de stock")
	ErrInvalidConversionFactor = errors.New("factor de conversión inválido")
	ErrInconsistentLedger      = errors.New("stock reconstruido negativo: libro y snapshot no coinciden")
	ErrUnauthorized            = errors.New("no autorizado")
)
