package auth_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcastro/estoque-api/internal/application/auth"
	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/entity"
	pkgjwt "github.com/jcastro/estoque-api/pkg/jwt"
)

type fakeUserRepo struct{ users []*entity.User }

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("usuario %s: %w", email, domain.ErrNotFound)
}

func newAuthFixture(t *testing.T) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: []*entity.User{{
		ID:           7,
		Email:        "ana@estoque.local",
		Name:         "Ana",
		PasswordHash: string(hash),
		Role:         "admin",
	}}}
	return auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "estoque-api-test",
	})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newAuthFixture(t)

	token, user, err := uc.Login(context.Background(), "ana@estoque.local", "secreta123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(7), user.ID)

	userID, role, err := pkgjwt.Parse("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "admin", role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuthFixture(t)
	_, _, err := uc.Login(context.Background(), "ana@estoque.local", "equivocada")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	// El mismo error que una password incorrecta: no se filtra si el email existe.
	uc := newAuthFixture(t)
	_, _, err := uc.Login(context.Background(), "nadie@estoque.local", "secreta123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
