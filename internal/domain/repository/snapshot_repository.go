package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/domain/entity"
)

// SnapshotRepository puerto del snapshot de stock por (tienda, producto).
// A lo sumo un snapshot vivo por par: Put lo reemplaza, ApplyDelta lo corrige.
type SnapshotRepository interface {
	// Get devuelve el snapshot o nil si el par nunca fue contado ni corregido.
	Get(ctx context.Context, storeID, productID int64) (*entity.StockSnapshot, error)

	ListByStore(ctx context.Context, storeID int64) ([]*entity.StockSnapshot, error)

	// Put reemplaza el snapshot con una cantidad absoluta y su count_time.
	Put(ctx context.Context, snap *entity.StockSnapshot) error

	// ApplyDelta suma delta (con signo) a la cantidad y actualiza updated_time;
	// crea la fila si no existe. No toca count_time.
	ApplyDelta(ctx context.Context, storeID, productID int64, delta decimal.Decimal, at time.Time) error
}
