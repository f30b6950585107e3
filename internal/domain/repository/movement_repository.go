package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/domain/entity"
)

// DailyExit total de salidas de un producto en un día calendario.
type DailyExit struct {
	ProductID int64
	Day       time.Time
	Quantity  decimal.Decimal
}

// MovementRepository puerto de persistencia del libro de movimientos.
// El libro es append-only: solo Create agrega; nada edita ni borra.
type MovementRepository interface {
	Create(ctx context.Context, m *entity.Movement) error

	// ListForReplay devuelve los movimientos de (tienda, producto) con
	// after < date <= until, ordenados por fecha ascendente.
	ListForReplay(ctx context.Context, storeID, productID int64, after, until time.Time) ([]*entity.Movement, error)

	// ListByStoreUntil devuelve todos los movimientos de la tienda con
	// date <= until, ordenados por fecha ascendente (variante batch).
	ListByStoreUntil(ctx context.Context, storeID int64, until time.Time) ([]*entity.Movement, error)

	// ListByStore lista movimientos de una tienda en un rango de fechas (historial).
	ListByStore(ctx context.Context, storeID int64, from, to time.Time, limit, offset int) ([]*entity.Movement, error)

	// ExitsByDay agrupa las salidas (OUT) por producto y día calendario en
	// [from, to]. productID nil = todos los productos de la tienda.
	ExitsByDay(ctx context.Context, storeID int64, productID *int64, from, to time.Time) ([]DailyExit, error)
}
