package purchase_test

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/estoque-api/internal/application/purchase"
	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/entity"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

const (
	testStoreID = int64(1)
)

// fakeOrderRepo pedidos en memoria con ids por secuencia.
type fakeOrderRepo struct {
	orders []*entity.PurchaseOrder
	items  []*entity.PurchaseOrderItem
	names  map[int64]string
	nextID int64
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.PurchaseOrder) (int64, error) {
	r.nextID++
	order.ID = r.nextID
	cp := *order
	r.orders = append(r.orders, &cp)
	return order.ID, nil
}

func (r *fakeOrderRepo) AddItem(_ context.Context, item *entity.PurchaseOrderItem) error {
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.PurchaseOrder, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, fmt.Errorf("pedido %d: %w", id, domain.ErrNotFound)
}

func (r *fakeOrderRepo) ListByStore(_ context.Context, storeID int64) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.orders {
		if o.StoreID == storeID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeOrderRepo) ListItems(_ context.Context, orderID int64) ([]*entity.PurchaseOrderItem, error) {
	var out []*entity.PurchaseOrderItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			cp := *it
			cp.ProductName = r.names[it.ProductID]
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out, nil
}

type fakeOrderTxRunner struct {
	repo *fakeOrderRepo
}

func (r *fakeOrderTxRunner) RunOrders(ctx context.Context, fn func(orderRepo repository.PurchaseOrderRepository) error) error {
	return fn(r.repo)
}

type fakeStoreRepo struct{ stores []*entity.Store }

func (r *fakeStoreRepo) List(_ context.Context) ([]*entity.Store, error) { return r.stores, nil }
func (r *fakeStoreRepo) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("tienda %d: %w", id, domain.ErrNotFound)
}

type fakeProductRepo struct{ products []*entity.Product }

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) { return r.products, nil }
func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
}

func newOrderFixture() (*fakeOrderRepo, *purchase.OrderUseCase) {
	orderRepo := &fakeOrderRepo{names: map[int64]string{42: "Açaí 10L", 43: "Polpa de Morango"}}
	storeRepo := &fakeStoreRepo{stores: []*entity.Store{{ID: testStoreID, Name: "Tienda Centro"}}}
	productRepo := &fakeProductRepo{products: []*entity.Product{
		{ID: 42, Name: "Açaí 10L"},
		{ID: 43, Name: "Polpa de Morango"},
	}}
	uc := purchase.NewOrderUseCase(&fakeOrderTxRunner{repo: orderRepo}, orderRepo, storeRepo, productRepo)
	return orderRepo, uc
}

func TestCreateOrder_PersisteCabeceraYLineas(t *testing.T) {
	orderRepo, uc := newOrderFixture()

	id, err := uc.CreateOrder(context.Background(), testStoreID, []purchase.OrderItemInput{
		{ProductID: 42, Quantity: decimal.NewFromInt(3)},
		{ProductID: 43, Quantity: decimal.NewFromInt(2)},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.Len(t, orderRepo.orders, 1)
	require.Len(t, orderRepo.items, 2)
	assert.Equal(t, id, orderRepo.items[0].OrderID)
}

func TestCreateOrder_LineaEnCeroRechazaTodo(t *testing.T) {
	orderRepo, uc := newOrderFixture()

	_, err := uc.CreateOrder(context.Background(), testStoreID, []purchase.OrderItemInput{
		{ProductID: 42, Quantity: decimal.NewFromInt(3)},
		{ProductID: 43, Quantity: decimal.Zero},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, orderRepo.orders, "una línea inválida rechaza el pedido completo")
	assert.Empty(t, orderRepo.items)
}

func TestCreateOrder_SinLineas(t *testing.T) {
	_, uc := newOrderFixture()
	_, err := uc.CreateOrder(context.Background(), testStoreID, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateOrder_ProductoInexistente(t *testing.T) {
	orderRepo, uc := newOrderFixture()
	_, err := uc.CreateOrder(context.Background(), testStoreID, []purchase.OrderItemInput{
		{ProductID: 999, Quantity: decimal.NewFromInt(1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, orderRepo.orders)
}

func TestListOrders_MasRecientePrimero(t *testing.T) {
	orderRepo, uc := newOrderFixture()
	now := time.Now().UTC()
	orderRepo.orders = []*entity.PurchaseOrder{
		{ID: 1, StoreID: testStoreID, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 2, StoreID: testStoreID, CreatedAt: now},
	}
	orderRepo.nextID = 2

	got, err := uc.ListOrders(context.Background(), testStoreID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestGetOrderItems_OrdenAlfabetico(t *testing.T) {
	_, uc := newOrderFixture()
	id, err := uc.CreateOrder(context.Background(), testStoreID, []purchase.OrderItemInput{
		{ProductID: 43, Quantity: decimal.NewFromInt(2)},
		{ProductID: 42, Quantity: decimal.NewFromInt(3)},
	})
	require.NoError(t, err)

	items, err := uc.GetOrderItems(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Açaí 10L", items[0].ProductName)
	assert.Equal(t, "Polpa de Morango", items[1].ProductName)
}

func TestGetOrderItems_PedidoInexistente(t *testing.T) {
	_, uc := newOrderFixture()
	_, err := uc.GetOrderItems(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
