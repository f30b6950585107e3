package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/entity"
	"github.com/jcastro/estoque-api/internal/domain/repository"
	"github.com/jcastro/estoque-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticación de operadores del API (login con bcrypt + JWT).
// El alta de usuarios es tarea de administración, fuera del API.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password y devuelve un token firmado más el usuario.
// Credenciales incorrectas son siempre ErrUnauthorized (sin distinguir si el
// email existe).
func (uc *UseCase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrUnauthorized
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
