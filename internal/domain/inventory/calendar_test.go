package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jcastro/estoque-api/internal/domain/inventory"
)

func d(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestDaysBetween_SoloFechaCalendario(t *testing.T) {
	// La hora se descarta: 23:00 → 01:00 del día siguiente sigue siendo 1 día.
	assert.Equal(t, 1, inventory.DaysBetween(d(2025, 3, 10, 23), d(2025, 3, 11, 1)),
		"la diferencia es por fecha calendario, no por horas transcurridas")
	assert.Equal(t, 0, inventory.DaysBetween(d(2025, 3, 10, 0), d(2025, 3, 10, 23)),
		"mismo día calendario es 0 días")
	assert.Equal(t, 30, inventory.DaysBetween(d(2025, 3, 1, 12), d(2025, 3, 31, 8)))
}

func TestDaysBetween_NegativoSiElFinEsAnterior(t *testing.T) {
	assert.Equal(t, -5, inventory.DaysBetween(d(2025, 3, 10, 0), d(2025, 3, 5, 0)))
}

func TestStartOfDayEndOfDay(t *testing.T) {
	at := time.Date(2025, 3, 10, 15, 42, 7, 123, time.UTC)

	start := inventory.StartOfDay(at)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)

	end := inventory.EndOfDay(at)
	assert.True(t, end.After(at), "el fin del día cubre cualquier instante del día")
	assert.Equal(t, 10, end.Day(), "el fin del día no se pasa al día siguiente")
	assert.True(t, end.Before(start.AddDate(0, 0, 1)))
}
