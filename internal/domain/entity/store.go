package entity

// Store representa una tienda (punto de venta) de la operación multi-tienda.
// El core solo la referencia; el alta/edición de tiendas pertenece al catálogo.
type Store struct {
	ID   int64
	Name string
}
