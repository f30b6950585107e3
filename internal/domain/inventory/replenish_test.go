package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/inventory"
)

func TestTargetStock(t *testing.T) {
	// 5 unidades/día, 5 días de gap + ruta cada 30 días = 175 unidades.
	target := inventory.TargetStock(decimal.NewFromInt(5), 5, 30)
	assert.True(t, target.Equal(decimal.NewFromInt(175)), "target = %s", target)
}

func TestSuggestedIssueUnits(t *testing.T) {
	target := decimal.NewFromInt(175)

	t.Run("necesidad positiva", func(t *testing.T) {
		got := inventory.SuggestedIssueUnits(target, decimal.Zero, decimal.NewFromInt(100))
		assert.True(t, got.Equal(decimal.NewFromInt(75)))
	})

	t.Run("sobrestock sugiere cero, nunca negativo", func(t *testing.T) {
		got := inventory.SuggestedIssueUnits(target, decimal.Zero, decimal.NewFromInt(200))
		assert.True(t, got.Equal(decimal.Zero))
	})

	t.Run("necesidad fraccionaria redondea hacia arriba", func(t *testing.T) {
		got := inventory.SuggestedIssueUnits(decimal.RequireFromString("10.2"), decimal.Zero, decimal.Zero)
		assert.True(t, got.Equal(decimal.NewFromInt(11)))
	})

	t.Run("margen de seguridad", func(t *testing.T) {
		// 10% sobre 100 de objetivo con 100 en stock: faltan 10.
		got := inventory.SuggestedIssueUnits(decimal.NewFromInt(100), decimal.RequireFromString("0.1"), decimal.NewFromInt(100))
		assert.True(t, got.Equal(decimal.NewFromInt(10)))
	})
}

func TestPurchaseUnits_RedondeoHaciaArriba(t *testing.T) {
	factor := decimal.NewFromInt(25)

	got, err := inventory.PurchaseUnits(decimal.NewFromInt(75), factor)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(3)), "75/25 = 3 cajas exactas")

	got, err = inventory.PurchaseUnits(decimal.NewFromInt(76), factor)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(4)), "una unidad de más obliga a otra caja")

	got, err = inventory.PurchaseUnits(decimal.NewFromInt(1), factor)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1)))
}

func TestPurchaseUnits_CeroSoloConCero(t *testing.T) {
	// PurchaseUnits == 0 exactamente cuando no hay nada que pedir.
	got, err := inventory.PurchaseUnits(decimal.Zero, decimal.NewFromInt(25))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.Zero))

	got, err = inventory.PurchaseUnits(decimal.RequireFromString("0.5"), decimal.NewFromInt(25))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1)), "cualquier necesidad positiva pide al menos 1")
}

func TestPurchaseUnits_FactorInvalido(t *testing.T) {
	_, err := inventory.PurchaseUnits(decimal.NewFromInt(10), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidConversionFactor)

	_, err = inventory.PurchaseUnits(decimal.NewFromInt(10), decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidConversionFactor)
}
