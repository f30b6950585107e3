package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/estoque-api/internal/application/inventory"
	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/entity"
)

func newHistoryFixture() (*fakeMovementRepo, *inventory.HistoryUseCase) {
	movRepo := &fakeMovementRepo{}
	storeRepo := &fakeStoreRepo{stores: []*entity.Store{{ID: testStoreID, Name: "Tienda Centro"}}}
	return movRepo, inventory.NewHistoryUseCase(movRepo, storeRepo)
}

func TestListMovements_MasRecientePrimero(t *testing.T) {
	movRepo, uc := newHistoryFixture()
	addMovement(movRepo, entity.MovementTypeIN, 5, ts(2, 10))
	addMovement(movRepo, entity.MovementTypeOUT, 3, ts(4, 10))
	addMovement(movRepo, entity.MovementTypeIN, 1, ts(6, 10))

	got, err := uc.ListMovements(context.Background(), testStoreID, ts(1, 0), ts(10, 0), 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].Date.After(got[1].Date))
	assert.True(t, got[1].Date.After(got[2].Date))
}

func TestListMovements_Paginacion(t *testing.T) {
	movRepo, uc := newHistoryFixture()
	for day := 2; day <= 6; day++ {
		addMovement(movRepo, entity.MovementTypeIN, 1, ts(day, 10))
	}

	page, err := uc.ListMovements(context.Background(), testStoreID, ts(1, 0), ts(10, 0), 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestListMovements_RangoInvalido(t *testing.T) {
	_, uc := newHistoryFixture()
	_, err := uc.ListMovements(context.Background(), testStoreID, ts(10, 0), ts(5, 0), 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}

func TestListMovements_TiendaInexistente(t *testing.T) {
	_, uc := newHistoryFixture()
	_, err := uc.ListMovements(context.Background(), 999, ts(1, 0), ts(5, 0), 10, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
