package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/estoque-api/internal/application/dto"
	"github.com/jcastro/estoque-api/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP:
// entrada inválida 400, reglas de parámetros violadas 422, recurso inexistente
// 404, libro inconsistente 409 (alerta de calidad de datos), resto 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidPeriod):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidArrival):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_ARRIVAL", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidConversionFactor):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_CONVERSION_FACTOR", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInconsistentLedger):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INCONSISTENT_LEDGER", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
