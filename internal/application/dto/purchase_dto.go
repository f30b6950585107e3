package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de pedido en unidades de compra (> 0).
type OrderItemRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// CreateOrderRequest pedido de compra a persistir.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// OrderDTO cabecera de pedido.
type OrderDTO struct {
	ID        int64     `json:"id"`
	StoreID   int64     `json:"store_id"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderItemDTO línea de pedido con nombre de producto.
type OrderItemDTO struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
}
