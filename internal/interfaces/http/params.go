package http

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/estoque-api/internal/domain"
)

// parseIDParam lee un parámetro de ruta como id entero positivo.
func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s debe ser un entero positivo", domain.ErrInvalidInput, name)
	}
	return id, nil
}

// parseDayQuery lee un query param de fecha (YYYY-MM-DD, interpretada en UTC).
// Requerido: query vacío es error.
func parseDayQuery(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: falta el parámetro %s (YYYY-MM-DD)", domain.ErrInvalidInput, name)
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s inválido, formato YYYY-MM-DD", domain.ErrInvalidInput, name)
	}
	return day, nil
}
