package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de stock.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // corrección con signo (conteo físico)
)

// Movement es un registro inmutable del libro de movimientos (append-only).
// Quantity es > 0 para IN/OUT; para ADJUSTMENT lleva el delta con signo.
// Las correcciones nunca editan registros existentes: se agregan movimientos nuevos.
type Movement struct {
	ID            int64
	TransactionID string // agrupa los escritos de una misma acción lógica (uuid)
	StoreID       int64
	ProductID     int64
	Type          string
	Quantity      decimal.Decimal
	Reason        string
	Date          time.Time
	CreatedAt     time.Time
}

// SignedQuantity devuelve el efecto del movimiento sobre el stock:
// +Quantity para IN, -Quantity para OUT, Quantity tal cual para ADJUSTMENT.
func (m Movement) SignedQuantity() decimal.Decimal {
	switch m.Type {
	case MovementTypeIN:
		return m.Quantity
	case MovementTypeOUT:
		return m.Quantity.Neg()
	case MovementTypeADJUSTMENT:
		return m.Quantity
	}
	return decimal.Zero
}
