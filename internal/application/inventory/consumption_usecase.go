package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/domain"
	domaininv "github.com/jcastro/estoque-api/internal/domain/inventory"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

// ConsumptionUseCase estima el consumo diario de un producto a partir de las
// salidas reales registradas en el libro (no proyecciones): total de salidas
// del período dividido por los días del período según la convención única de
// DaysBetween. Solo lectura.
type ConsumptionUseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
}

// NewConsumptionUseCase construye el estimador.
func NewConsumptionUseCase(
	movementRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) *ConsumptionUseCase {
	return &ConsumptionUseCase{movementRepo: movementRepo, productRepo: productRepo}
}

// DailyConsumption devuelve la tasa de consumo (unidades de salida/día) de un
// producto en [start, end]. end debe ser estrictamente posterior a start (por
// día calendario); si no, ErrInvalidPeriod — nunca se divide por cero.
//
// smoothingWindowDays > 0 activa el suavizado: en vez de la tasa plana del
// período se promedia la cola de N días de salidas (política configurable,
// ver SuggestPolicy).
func (uc *ConsumptionUseCase) DailyConsumption(ctx context.Context, storeID, productID int64, start, end time.Time, smoothingWindowDays int) (decimal.Decimal, error) {
	days := domaininv.DaysBetween(start, end)
	if days <= 0 {
		return decimal.Zero, domain.ErrInvalidPeriod
	}
	exits, err := uc.movementRepo.ExitsByDay(ctx, storeID, &productID,
		domaininv.StartOfDay(start), domaininv.EndOfDay(end))
	if err != nil {
		return decimal.Zero, err
	}
	return rateFromExits(exits, end, days, smoothingWindowDays), nil
}

// DailyConsumptionAll devuelve una tasa por producto del catálogo. Productos
// sin salidas en el período aparecen con tasa 0, no ausentes.
func (uc *ConsumptionUseCase) DailyConsumptionAll(ctx context.Context, storeID int64, start, end time.Time, smoothingWindowDays int) (map[int64]decimal.Decimal, error) {
	days := domaininv.DaysBetween(start, end)
	if days <= 0 {
		return nil, domain.ErrInvalidPeriod
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	exits, err := uc.movementRepo.ExitsByDay(ctx, storeID, nil,
		domaininv.StartOfDay(start), domaininv.EndOfDay(end))
	if err != nil {
		return nil, err
	}

	byProduct := make(map[int64][]repository.DailyExit)
	for _, e := range exits {
		byProduct[e.ProductID] = append(byProduct[e.ProductID], e)
	}

	rates := make(map[int64]decimal.Decimal, len(products))
	for _, p := range products {
		rates[p.ID] = rateFromExits(byProduct[p.ID], end, days, smoothingWindowDays)
	}
	return rates, nil
}

// rateFromExits calcula la tasa diaria. Sin suavizado: total ÷ días del
// período. Con ventana N (acotada al largo del período): promedio de los
// últimos N días calendario del período, salidas ausentes cuentan como 0.
func rateFromExits(exits []repository.DailyExit, end time.Time, periodDays, windowDays int) decimal.Decimal {
	if windowDays > periodDays {
		windowDays = periodDays
	}
	if windowDays <= 0 {
		total := decimal.Zero
		for _, e := range exits {
			total = total.Add(e.Quantity)
		}
		return total.Div(decimal.NewFromInt(int64(periodDays)))
	}

	cutoff := domaininv.StartOfDay(end).AddDate(0, 0, -(windowDays - 1))
	total := decimal.Zero
	for _, e := range exits {
		if !domaininv.StartOfDay(e.Day).Before(cutoff) {
			total = total.Add(e.Quantity)
		}
	}
	return total.Div(decimal.NewFromInt(int64(windowDays)))
}
