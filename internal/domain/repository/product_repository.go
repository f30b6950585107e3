package repository

import (
	"context"

	"github.com/jcastro/estoque-api/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo de productos.
// El core nunca muta el catálogo.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	// GetByID devuelve domain.ErrNotFound si el producto no existe.
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
}
