package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para las correcciones:
// los deltas de snapshot y los movimientos del libro se escriben todos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		snapRepo repository.SnapshotRepository,
	) error) error
}

// InvoiceItem línea de una factura de proveedor parseada.
type InvoiceItem struct {
	ProductCode string
	Description string
	Quantity    decimal.Decimal
	IssuedAt    time.Time // cero si el documento no trae fecha por ítem
}

// ParsedInvoice resultado de parsear un XML de factura de proveedor.
type ParsedInvoice struct {
	Supplier string
	IssuedAt time.Time
	Items    []InvoiceItem
}

// InvoiceParser puerto del parser de facturas XML (NF-e) para entradas de stock.
type InvoiceParser interface {
	Parse(doc []byte) (*ParsedInvoice, error)
}
