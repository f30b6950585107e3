package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockSnapshot es la última cantidad absoluta conocida de un producto en una
// tienda. Hay a lo sumo un snapshot vivo por (tienda, producto): los conteos
// lo reemplazan, las correcciones directas le aplican deltas.
type StockSnapshot struct {
	StoreID     int64
	ProductID   int64
	Quantity    decimal.Decimal
	CountTime   *time.Time // instante del último conteo físico; nil si nunca se contó
	UpdatedTime time.Time  // última mutación (conteo o corrección directa)
}

// ReferenceTime devuelve el instante ancla para reproducir el libro:
// CountTime si existe un conteo, si no UpdatedTime.
func (s StockSnapshot) ReferenceTime() time.Time {
	if s.CountTime != nil {
		return *s.CountTime
	}
	return s.UpdatedTime
}
