package repository

import (
	"context"

	"github.com/jcastro/estoque-api/internal/domain/entity"
)

// UserRepository puerto de usuarios (solo autenticación).
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
