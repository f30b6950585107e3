package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/application/catalog"
	"github.com/jcastro/estoque-api/internal/domain"
	domaininv "github.com/jcastro/estoque-api/internal/domain/inventory"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

// SuggestPolicy parámetros de política del cálculo de reposición. Ambas
// variantes históricas del negocio son reproducibles por configuración:
// margen de seguridad del 10% = SafetyFraction 0.1; tasa suavizada = ventana > 0.
type SuggestPolicy struct {
	SafetyFraction      decimal.Decimal // fracción extra sobre el stock objetivo (0 = sin margen)
	SmoothingWindowDays int             // 0 = tasa plana del período
}

// ReplenishmentSuggestion sugerencia de compra por producto, en unidades de
// salida y de compra (conversión por factor con redondeo hacia arriba).
type ReplenishmentSuggestion struct {
	ProductID              int64
	Name                   string
	Category               string
	CurrentStock           decimal.Decimal
	DailyConsumption       decimal.Decimal
	GapDays                int // días entre la foto de stock y la llegada
	CoverageDays           int // gap + periodicidad de la ruta
	TargetStock            decimal.Decimal
	SuggestedIssueUnits    decimal.Decimal
	SuggestedPurchaseUnits decimal.Decimal
}

// ReplenishmentUseCase combina la tasa de consumo, el lead time (foto de
// stock → llegada del camión) y la periodicidad de la ruta en una sugerencia
// de compra por producto. Cálculo puro sobre los adaptadores, sin efectos.
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
	stock       *StockUseCase
	consumption *ConsumptionUseCase
}

// NewReplenishmentUseCase construye el calculador de reposición.
func NewReplenishmentUseCase(
	productRepo repository.ProductRepository,
	stock *StockUseCase,
	consumption *ConsumptionUseCase,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo, stock: stock, consumption: consumption}
}

// Suggest genera una sugerencia por producto del catálogo (también para
// productos sin historia: necesidad futura pura, caso bootstrap).
//
//  1. tasa = consumo diario en [periodStart, periodEnd]
//  2. objetivo = tasa × (periodicidad + gap), gap = días periodEnd → nextArrival
//  3. stockActual = StockAt(tienda, producto, fin del día de periodEnd)
//  4. sugerido (salida) = ceil(max(0, objetivo + margen − stockActual))
//  5. sugerido (compra) = ceil(salida ÷ factor de conversión)
//
// gap < 0 es ErrInvalidArrival; periodicidad < 1 es ErrInvalidInput; un factor
// de conversión ≤ 0 es ErrInvalidConversionFactor.
func (uc *ReplenishmentUseCase) Suggest(
	ctx context.Context,
	storeID int64,
	periodStart, periodEnd, nextArrival time.Time,
	periodicityDays int,
	policy SuggestPolicy,
) ([]ReplenishmentSuggestion, error) {
	gap := domaininv.DaysBetween(periodEnd, nextArrival)
	if gap < 0 {
		return nil, domain.ErrInvalidArrival
	}
	if periodicityDays < 1 {
		return nil, fmt.Errorf("%w: la periodicidad mínima de la ruta es 1 día", domain.ErrInvalidInput)
	}
	if policy.SafetyFraction.IsNegative() {
		return nil, fmt.Errorf("%w: fracción de seguridad negativa", domain.ErrInvalidInput)
	}

	rates, err := uc.consumption.DailyConsumptionAll(ctx, storeID, periodStart, periodEnd, policy.SmoothingWindowDays)
	if err != nil {
		return nil, err
	}
	// La "foto de stock" se toma al final del día de periodEnd. Un libro
	// inconsistente invalida la sugerencia completa y se propaga al caller.
	stocks, err := uc.stock.StockAtForAllProducts(ctx, storeID, domaininv.EndOfDay(periodEnd))
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := make([]ReplenishmentSuggestion, 0, len(products))
	for _, p := range products {
		rate := rates[p.ID]
		current := stocks[p.ID]
		target := domaininv.TargetStock(rate, gap, periodicityDays)
		issue := domaininv.SuggestedIssueUnits(target, policy.SafetyFraction, current)
		purchase, err := domaininv.PurchaseUnits(issue, p.ConversionFactor)
		if err != nil {
			return nil, fmt.Errorf("producto %d (%s): %w", p.ID, p.Name, err)
		}

		suggestions = append(suggestions, ReplenishmentSuggestion{
			ProductID:              p.ID,
			Name:                   p.Name,
			Category:               p.Category,
			CurrentStock:           current,
			DailyConsumption:       rate,
			GapDays:                gap,
			CoverageDays:           gap + periodicityDays,
			TargetStock:            target,
			SuggestedIssueUnits:    issue,
			SuggestedPurchaseUnits: purchase,
		})
	}

	// Mismo orden de presentación que el catálogo: categoría (orden fijo de
	// exhibición) y nombre.
	sort.SliceStable(suggestions, func(i, j int) bool {
		ri, rj := catalog.CategoryRank(suggestions[i].Category), catalog.CategoryRank(suggestions[j].Category)
		if ri != rj {
			return ri < rj
		}
		return suggestions[i].Name < suggestions[j].Name
	})
	return suggestions, nil
}
