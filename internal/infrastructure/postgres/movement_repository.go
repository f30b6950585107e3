package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/estoque-api/internal/domain/entity"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). El libro es append-only: no hay UPDATE ni DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, transaction_id, store_id, product_id, type, quantity, reason, date, created_at`

// Create agrega un movimiento al libro.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO stock_movements (transaction_id, store_id, product_id, type, quantity, reason, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		m.TransactionID, m.StoreID, m.ProductID, m.Type,
		m.Quantity, m.Reason, m.Date, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListForReplay devuelve los movimientos de (tienda, producto) con
// after < date <= until, orden ascendente. El límite inferior es estricto para
// no contar dos veces el ajuste anclado en el instante del snapshot.
func (r *MovementRepo) ListForReplay(ctx context.Context, storeID, productID int64, after, until time.Time) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE store_id = $1 AND product_id = $2 AND date > $3 AND date <= $4
		ORDER BY date ASC, id ASC`
	rows, err := r.q.Query(ctx, query, storeID, productID, after, until)
	if err != nil {
		return nil, fmt.Errorf("list movements for replay: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByStoreUntil devuelve todos los movimientos de la tienda con date <= until,
// orden ascendente (variante batch: el filtro por snapshot lo aplica el caller).
func (r *MovementRepo) ListByStoreUntil(ctx context.Context, storeID int64, until time.Time) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE store_id = $1 AND date <= $2
		ORDER BY date ASC, id ASC`
	rows, err := r.q.Query(ctx, query, storeID, until)
	if err != nil {
		return nil, fmt.Errorf("list movements by store: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByStore lista movimientos de una tienda en un rango de fechas (historial),
// más reciente primero.
func (r *MovementRepo) ListByStore(ctx context.Context, storeID int64, from, to time.Time, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE store_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC, id DESC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, storeID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements history: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ExitsByDay agrupa las salidas (OUT) por producto y día calendario en [from, to].
// productID nil = todos los productos de la tienda.
func (r *MovementRepo) ExitsByDay(ctx context.Context, storeID int64, productID *int64, from, to time.Time) ([]repository.DailyExit, error) {
	query := `
		SELECT product_id, DATE(date AT TIME ZONE 'UTC') AS day, SUM(quantity)
		FROM stock_movements
		WHERE store_id = $1 AND type = 'OUT' AND date >= $2 AND date <= $3`
	args := []any{storeID, from, to}
	if productID != nil {
		query += ` AND product_id = $4`
		args = append(args, *productID)
	}
	query += `
		GROUP BY product_id, day
		ORDER BY product_id ASC, day ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("exits by day: %w", err)
	}
	defer rows.Close()

	var exits []repository.DailyExit
	for rows.Next() {
		var e repository.DailyExit
		if err := rows.Scan(&e.ProductID, &e.Day, &e.Quantity); err != nil {
			return nil, fmt.Errorf("scan daily exit: %w", err)
		}
		e.Day = e.Day.UTC()
		exits = append(exits, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily exits: %w", err)
	}
	return exits, nil
}

func scanMovements(rows pgx.Rows) ([]*entity.Movement, error) {
	var movements []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.TransactionID, &m.StoreID, &m.ProductID,
			&m.Type, &m.Quantity, &m.Reason, &m.Date, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movements: %w", err)
	}
	return movements, nil
}
