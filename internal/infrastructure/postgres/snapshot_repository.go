package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/domain/entity"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo snapshot de stock por (tienda, producto) sobre PostgreSQL.
// La PK compuesta (store_id, product_id) garantiza a lo sumo una fila por par.
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// Get devuelve el snapshot o nil si el par nunca fue contado ni corregido.
func (r *SnapshotRepo) Get(ctx context.Context, storeID, productID int64) (*entity.StockSnapshot, error) {
	query := `
		SELECT store_id, product_id, quantity, count_time, updated_time
		FROM stock_snapshots
		WHERE store_id = $1 AND product_id = $2`
	var s entity.StockSnapshot
	err := r.q.QueryRow(ctx, query, storeID, productID).Scan(
		&s.StoreID, &s.ProductID, &s.Quantity, &s.CountTime, &s.UpdatedTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return &s, nil
}

// ListByStore devuelve los snapshots de la tienda.
func (r *SnapshotRepo) ListByStore(ctx context.Context, storeID int64) ([]*entity.StockSnapshot, error) {
	query := `
		SELECT store_id, product_id, quantity, count_time, updated_time
		FROM stock_snapshots
		WHERE store_id = $1
		ORDER BY product_id ASC`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []*entity.StockSnapshot
	for rows.Next() {
		var s entity.StockSnapshot
		if err := rows.Scan(&s.StoreID, &s.ProductID, &s.Quantity, &s.CountTime, &s.UpdatedTime); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snaps = append(snaps, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return snaps, nil
}

// Put reemplaza el snapshot con una cantidad absoluta y su count_time (conteo físico).
func (r *SnapshotRepo) Put(ctx context.Context, snap *entity.StockSnapshot) error {
	query := `
		INSERT INTO stock_snapshots (store_id, product_id, quantity, count_time, updated_time)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (store_id, product_id) DO UPDATE
		SET quantity = EXCLUDED.quantity,
		    count_time = EXCLUDED.count_time,
		    updated_time = EXCLUDED.updated_time`
	_, err := r.q.Exec(ctx, query,
		snap.StoreID, snap.ProductID, snap.Quantity, snap.CountTime, snap.UpdatedTime,
	)
	if err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}

// ApplyDelta suma delta (con signo) a la cantidad y actualiza updated_time;
// crea la fila si no existe. No toca count_time: el ancla de conteo se preserva.
func (r *SnapshotRepo) ApplyDelta(ctx context.Context, storeID, productID int64, delta decimal.Decimal, at time.Time) error {
	query := `
		INSERT INTO stock_snapshots (store_id, product_id, quantity, count_time, updated_time)
		VALUES ($1, $2, $3, NULL, $4)
		ON CONFLICT (store_id, product_id) DO UPDATE
		SET quantity = stock_snapshots.quantity + EXCLUDED.quantity,
		    updated_time = EXCLUDED.updated_time`
	_, err := r.q.Exec(ctx, query, storeID, productID, delta, at)
	if err != nil {
		return fmt.Errorf("apply snapshot delta: %w", err)
	}
	return nil
}
