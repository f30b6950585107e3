package repository

import (
	"context"

	"github.com/jcastro/estoque-api/internal/domain/entity"
)

// PurchaseOrderRepository puerto de persistencia de pedidos de compra.
type PurchaseOrderRepository interface {
	// Create persiste la cabecera y devuelve el id asignado por secuencia.
	Create(ctx context.Context, order *entity.PurchaseOrder) (int64, error)

	AddItem(ctx context.Context, item *entity.PurchaseOrderItem) error

	// GetByID devuelve domain.ErrNotFound si el pedido no existe.
	GetByID(ctx context.Context, id int64) (*entity.PurchaseOrder, error)

	// ListByStore ordena por fecha de creación descendente.
	ListByStore(ctx context.Context, storeID int64) ([]*entity.PurchaseOrder, error)

	// ListItems devuelve las líneas con nombre de producto, orden alfabético.
	ListItems(ctx context.Context, orderID int64) ([]*entity.PurchaseOrderItem, error)
}
