package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/domain/entity"
)

// ReplayMovements reproduce el libro sobre una cantidad base (servicio de dominio):
// suma entradas, resta salidas y aplica ajustes con su signo. Es un fold puro
// sobre historia inmutable; no recorta resultados negativos — un negativo es
// señal de inconsistencia que el caller debe reportar.
func ReplayMovements(base decimal.Decimal, movements []*entity.Movement) decimal.Decimal {
	qty := base
	for _, m := range movements {
		qty = qty.Add(m.SignedQuantity())
	}
	return qty
}
