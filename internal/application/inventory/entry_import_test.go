package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/estoque-api/internal/application/inventory"
	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/entity"
)

func newImportFixture(parser inventory.InvoiceParser) (*fakeMovementRepo, *fakeSnapshotRepo, *inventory.EntryImportUseCase) {
	movRepo := &fakeMovementRepo{}
	snapRepo := newFakeSnapshotRepo()
	storeRepo := &fakeStoreRepo{stores: []*entity.Store{{ID: testStoreID, Name: "Tienda Centro"}}}
	productRepo := &fakeProductRepo{products: []*entity.Product{
		{ID: 42, Name: "Açaí 10L", Category: "Açaí"},
		{ID: 43, Name: "Polpa de Morango", Category: "Polpa"},
	}}
	txRunner := &fakeTxRunner{movRepo: movRepo, snapRepo: snapRepo}
	return movRepo, snapRepo, inventory.NewEntryImportUseCase(txRunner, parser, storeRepo, productRepo)
}

func TestImportEntries_RegistraEntradasPorItem(t *testing.T) {
	issued := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	parser := &fakeParser{invoice: &inventory.ParsedInvoice{
		Supplier: "Distribuidora Sul",
		IssuedAt: issued,
		Items: []inventory.InvoiceItem{
			{ProductCode: "42", Quantity: decimal.NewFromInt(20), IssuedAt: issued},
			{ProductCode: "43", Quantity: decimal.RequireFromString("7.5"), IssuedAt: issued},
		},
	}}
	movRepo, snapRepo, uc := newImportFixture(parser)

	n, err := uc.ImportEntries(context.Background(), testStoreID, []byte("<xml/>"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.Len(t, movRepo.movements, 2)
	for _, m := range movRepo.movements {
		assert.Equal(t, entity.MovementTypeIN, m.Type)
		assert.Equal(t, issued, m.Date)
		assert.Contains(t, m.Reason, "Distribuidora Sul")
		assert.Equal(t, movRepo.movements[0].TransactionID, m.TransactionID,
			"todas las entradas del documento comparten transaction id")
	}

	snap, _ := snapRepo.Get(context.Background(), testStoreID, 43)
	require.NotNil(t, snap)
	assert.True(t, snap.Quantity.Equal(decimal.RequireFromString("7.5")))
}

func TestImportEntries_CodigoDesconocidoRechazaElDocumento(t *testing.T) {
	parser := &fakeParser{invoice: &inventory.ParsedInvoice{
		Items: []inventory.InvoiceItem{
			{ProductCode: "42", Quantity: decimal.NewFromInt(20)},
			{ProductCode: "999", Quantity: decimal.NewFromInt(1)},
		},
	}}
	movRepo, _, uc := newImportFixture(parser)

	_, err := uc.ImportEntries(context.Background(), testStoreID, []byte("<xml/>"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movRepo.movements, "nada se persiste si un ítem no resuelve")
}

func TestImportEntries_XMLInvalido(t *testing.T) {
	parser := &fakeParser{err: assert.AnError}
	_, _, uc := newImportFixture(parser)

	_, err := uc.ImportEntries(context.Background(), testStoreID, []byte("no es xml"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportEntries_TiendaInexistente(t *testing.T) {
	parser := &fakeParser{invoice: &inventory.ParsedInvoice{
		Items: []inventory.InvoiceItem{{ProductCode: "42", Quantity: decimal.NewFromInt(1)}},
	}}
	_, _, uc := newImportFixture(parser)

	_, err := uc.ImportEntries(context.Background(), 999, []byte("<xml/>"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
