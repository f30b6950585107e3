package inventory

import (
	"context"
	"time"

	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/entity"
	domaininv "github.com/jcastro/estoque-api/internal/domain/inventory"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

// HistoryUseCase consulta el historial de movimientos de una tienda (proyección
// de solo lectura del libro, para auditoría).
type HistoryUseCase struct {
	movementRepo repository.MovementRepository
	storeRepo    repository.StoreRepository
}

// NewHistoryUseCase construye la consulta de historial.
func NewHistoryUseCase(movementRepo repository.MovementRepository, storeRepo repository.StoreRepository) *HistoryUseCase {
	return &HistoryUseCase{movementRepo: movementRepo, storeRepo: storeRepo}
}

// ListMovements lista los movimientos de la tienda en [from, to] (días
// calendario completos). from y to pueden ser el mismo día; from posterior a
// to es ErrInvalidPeriod.
func (uc *HistoryUseCase) ListMovements(ctx context.Context, storeID int64, from, to time.Time, limit, offset int) ([]*entity.Movement, error) {
	if domaininv.DaysBetween(from, to) < 0 {
		return nil, domain.ErrInvalidPeriod
	}
	if _, err := uc.storeRepo.GetByID(ctx, storeID); err != nil {
		return nil, err
	}
	return uc.movementRepo.ListByStore(ctx, storeID,
		domaininv.StartOfDay(from), domaininv.EndOfDay(to), limit, offset)
}
