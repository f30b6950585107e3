package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder es la cabecera de un pedido de compra generado desde una
// sugerencia. Inmutable después de creado; solo se consulta.
type PurchaseOrder struct {
	ID        int64
	StoreID   int64
	CreatedAt time.Time
}

// PurchaseOrderItem es una línea del pedido, en unidades de compra.
// ProductName se completa al leer (join con catálogo), no se persiste aquí.
type PurchaseOrderItem struct {
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    decimal.Decimal
}
