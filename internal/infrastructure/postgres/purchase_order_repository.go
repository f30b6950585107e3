package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/entity"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo pedidos de compra sobre PostgreSQL (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la cabecera y devuelve el id asignado por secuencia.
func (r *PurchaseOrderRepo) Create(ctx context.Context, order *entity.PurchaseOrder) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`INSERT INTO purchase_orders (store_id, created_at) VALUES ($1, $2) RETURNING id`,
		order.StoreID, order.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create purchase order: %w", err)
	}
	order.ID = id
	return id, nil
}

// AddItem agrega una línea al pedido.
func (r *PurchaseOrderRepo) AddItem(ctx context.Context, item *entity.PurchaseOrderItem) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO purchase_order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)`,
		item.OrderID, item.ProductID, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("add purchase order item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera; domain.ErrNotFound si no existe.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id int64) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := r.q.QueryRow(ctx,
		`SELECT id, store_id, created_at FROM purchase_orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.StoreID, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("pedido %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &o, nil
}

// ListByStore devuelve los pedidos de la tienda, más reciente primero.
func (r *PurchaseOrderRepo) ListByStore(ctx context.Context, storeID int64) ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, store_id, created_at FROM purchase_orders WHERE store_id = $1 ORDER BY created_at DESC, id DESC`,
		storeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.StoreID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchase orders: %w", err)
	}
	return orders, nil
}

// ListItems devuelve las líneas con nombre de producto (join con catálogo),
// orden alfabético por nombre.
func (r *PurchaseOrderRepo) ListItems(ctx context.Context, orderID int64) ([]*entity.PurchaseOrderItem, error) {
	query := `
		SELECT i.order_id, i.product_id, p.name, i.quantity
		FROM purchase_order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY p.name ASC`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()

	var items []*entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(&it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate purchase order items: %w", err)
	}
	return items, nil
}
