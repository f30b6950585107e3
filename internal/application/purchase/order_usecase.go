package purchase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/entity"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

// OrderItemInput línea a persistir, en unidades de compra.
type OrderItemInput struct {
	ProductID int64
	Quantity  decimal.Decimal
}

// OrderUseCase materializa sugerencias en pedidos de compra persistidos y
// expone la consulta de pedidos históricos.
type OrderUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.PurchaseOrderRepository
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase construye el caso de uso de pedidos.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.PurchaseOrderRepository,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{txRunner: txRunner, orderRepo: orderRepo, storeRepo: storeRepo, productRepo: productRepo}
}

// CreateOrder persiste cabecera y líneas en UNA transacción y devuelve el id
// asignado. Solo acepta líneas con cantidad > 0: el caller filtra las
// sugerencias en cero antes de invocar; recibir una línea en cero es una
// violación de contrato y rechaza el pedido completo (nunca se descarta en
// silencio, para mantener la auditoría exacta).
func (uc *OrderUseCase) CreateOrder(ctx context.Context, storeID int64, items []OrderItemInput) (int64, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: el pedido no tiene líneas", domain.ErrInvalidInput)
	}
	if _, err := uc.storeRepo.GetByID(ctx, storeID); err != nil {
		return 0, err
	}
	for _, it := range items {
		if !it.Quantity.GreaterThan(decimal.Zero) {
			return 0, fmt.Errorf("%w: cantidad no positiva para el producto %d", domain.ErrInvalidInput, it.ProductID)
		}
		if _, err := uc.productRepo.GetByID(ctx, it.ProductID); err != nil {
			return 0, fmt.Errorf("producto %d: %w", it.ProductID, err)
		}
	}

	var orderID int64
	err := uc.txRunner.RunOrders(ctx, func(orderRepo repository.PurchaseOrderRepository) error {
		id, err := orderRepo.Create(ctx, &entity.PurchaseOrder{
			StoreID:   storeID,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		for _, it := range items {
			item := &entity.PurchaseOrderItem{
				OrderID:   id,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
			}
			if err := orderRepo.AddItem(ctx, item); err != nil {
				return err
			}
		}
		orderID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// ListOrders devuelve los pedidos de la tienda, más reciente primero.
func (uc *OrderUseCase) ListOrders(ctx context.Context, storeID int64) ([]*entity.PurchaseOrder, error) {
	if _, err := uc.storeRepo.GetByID(ctx, storeID); err != nil {
		return nil, err
	}
	return uc.orderRepo.ListByStore(ctx, storeID)
}

// GetOrderItems devuelve las líneas del pedido ordenadas por nombre de
// producto. Pedido inexistente es domain.ErrNotFound.
func (uc *OrderUseCase) GetOrderItems(ctx context.Context, orderID int64) ([]*entity.PurchaseOrderItem, error) {
	if _, err := uc.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return uc.orderRepo.ListItems(ctx, orderID)
}
