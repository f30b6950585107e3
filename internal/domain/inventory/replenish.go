package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/domain"
)

// TargetStock calcula el stock objetivo: consumo diario por los días a cubrir
// (gap hasta la llegada + un ciclo completo de periodicidad de la ruta).
// TargetStock = rate * (periodicityDays + gapDays)
func TargetStock(rate decimal.Decimal, gapDays, periodicityDays int) decimal.Decimal {
	days := decimal.NewFromInt(int64(periodicityDays + gapDays))
	return rate.Mul(days)
}

// SuggestedIssueUnits calcula la sugerencia en unidades de salida:
// ceil(max(0, target + safety − current)). safety = safetyFraction * target.
func SuggestedIssueUnits(target, safetyFraction, current decimal.Decimal) decimal.Decimal {
	need := target.Add(target.Mul(safetyFraction)).Sub(current)
	if need.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return need.Ceil()
}

// PurchaseUnits convierte unidades de salida a unidades de compra con redondeo
// hacia arriba: ceil(issueUnits / factor). Un factor ≤ 0 es entrada inválida,
// nunca se divide en silencio. PurchaseUnits == 0 ⟺ issueUnits == 0.
func PurchaseUnits(issueUnits, factor decimal.Decimal) (decimal.Decimal, error) {
	if factor.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidConversionFactor
	}
	if issueUnits.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, nil
	}
	return issueUnits.Div(factor).Ceil(), nil
}
