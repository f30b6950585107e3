package repository

import (
	"context"

	"github.com/jcastro/estoque-api/internal/domain/entity"
)

// StoreRepository puerto de lectura de tiendas.
type StoreRepository interface {
	List(ctx context.Context) ([]*entity.Store, error)
	// GetByID devuelve domain.ErrNotFound si la tienda no existe.
	GetByID(ctx context.Context, id int64) (*entity.Store, error)
}
