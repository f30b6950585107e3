package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/entity"
	domaininv "github.com/jcastro/estoque-api/internal/domain/inventory"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

// StockUseCase es el motor de reconciliación del libro: reconstruye la
// cantidad en stock de un producto en una tienda en cualquier instante,
// combinando el snapshot más reciente con los movimientos posteriores.
// Solo lectura, sin efectos secundarios.
type StockUseCase struct {
	movementRepo repository.MovementRepository
	snapshotRepo repository.SnapshotRepository
	productRepo  repository.ProductRepository
}

// NewStockUseCase construye el motor sobre los adaptadores de libro, snapshot y catálogo.
func NewStockUseCase(
	movementRepo repository.MovementRepository,
	snapshotRepo repository.SnapshotRepository,
	productRepo repository.ProductRepository,
) *StockUseCase {
	return &StockUseCase{
		movementRepo: movementRepo,
		snapshotRepo: snapshotRepo,
		productRepo:  productRepo,
	}
}

// StockAt reconstruye el stock de (tienda, producto) al instante dado:
// cantidad del snapshot cuyo tiempo de referencia (count_time, o updated_time
// si nunca hubo conteo) es ≤ instant, más el neto de movimientos con
// referencia < fecha ≤ instant. Sin snapshot la base es 0 y se reproduce el
// libro completo (caso bootstrap de un par tienda/producto nuevo).
//
// Un resultado negativo se devuelve junto con ErrInconsistentLedger: señala
// un desajuste libro/snapshot y se reporta, nunca se recorta a cero.
func (uc *StockUseCase) StockAt(ctx context.Context, storeID, productID int64, instant time.Time) (decimal.Decimal, error) {
	snap, err := uc.snapshotRepo.Get(ctx, storeID, productID)
	if err != nil {
		return decimal.Zero, err
	}

	base := decimal.Zero
	var after time.Time // cero = reproducir el libro completo
	if snap != nil && !snap.ReferenceTime().After(instant) {
		base = snap.Quantity
		after = snap.ReferenceTime()
	}

	movements, err := uc.movementRepo.ListForReplay(ctx, storeID, productID, after, instant)
	if err != nil {
		return decimal.Zero, err
	}

	qty := domaininv.ReplayMovements(base, movements)
	if qty.IsNegative() {
		return qty, fmt.Errorf("%w: tienda %d, producto %d, instante %s",
			domain.ErrInconsistentLedger, storeID, productID, instant.Format(time.RFC3339))
	}
	return qty, nil
}

// StockAtForAllProducts es la variante batch de StockAt: una cantidad por
// producto del catálogo (0 para pares sin historia). El resultado es
// consistente con llamar StockAt producto por producto.
//
// Si algún producto reconstruye negativo, el mapa se devuelve completo junto
// con ErrInconsistentLedger indicando los productos afectados.
func (uc *StockUseCase) StockAtForAllProducts(ctx context.Context, storeID int64, instant time.Time) (map[int64]decimal.Decimal, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	snapshots, err := uc.snapshotRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.ListByStoreUntil(ctx, storeID, instant)
	if err != nil {
		return nil, err
	}

	snapByProduct := make(map[int64]*entity.StockSnapshot, len(snapshots))
	for _, s := range snapshots {
		snapByProduct[s.ProductID] = s
	}
	movsByProduct := make(map[int64][]*entity.Movement)
	for _, m := range movements {
		movsByProduct[m.ProductID] = append(movsByProduct[m.ProductID], m)
	}

	result := make(map[int64]decimal.Decimal, len(products))
	var inconsistent []int64
	for _, p := range products {
		base := decimal.Zero
		var after time.Time
		if snap, ok := snapByProduct[p.ID]; ok && !snap.ReferenceTime().After(instant) {
			base = snap.Quantity
			after = snap.ReferenceTime()
		}

		qty := base
		for _, m := range movsByProduct[p.ID] {
			if m.Date.After(after) { // el repo ya garantiza fecha ≤ instant
				qty = qty.Add(m.SignedQuantity())
			}
		}
		if qty.IsNegative() {
			inconsistent = append(inconsistent, p.ID)
		}
		result[p.ID] = qty
	}

	if len(inconsistent) > 0 {
		return result, fmt.Errorf("%w: tienda %d, productos %v", domain.ErrInconsistentLedger, storeID, inconsistent)
	}
	return result, nil
}
