package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo.
// ConversionFactor es el multiplicador unidad de compra → unidad de salida
// (ej. 1 caja = 25 unidades). Invariante: factor ≥ 1; si el catálogo no lo
// conoce se asume 1, nunca 0.
type Product struct {
	ID               int64
	Name             string
	Category         string
	IssueUnit        string // unidad en la que sale el stock (ej. "unidad", "kg")
	PurchaseUnit     string // unidad en la que se compra (ej. "caja", "fardo")
	ConversionFactor decimal.Decimal
}
