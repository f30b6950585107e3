package purchase

import (
	"context"

	"github.com/jcastro/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función con un repositorio de pedidos atado a una
// transacción: cabecera y líneas se persisten como una unidad.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(orderRepo repository.PurchaseOrderRepository) error) error
}
