package inventory_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/application/inventory"
	"github.com/jcastro/estoque-api/internal/domain"
	"github.com/jcastro/estoque-api/internal/domain/entity"
	domaininv "github.com/jcastro/estoque-api/internal/domain/inventory"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con la misma semántica que los adaptadores de PostgreSQL:
// libro append-only ordenado por fecha, snapshot único por par y agregación
// de salidas por día calendario.
// ─────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements []*entity.Movement
	nextID    int64
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListForReplay(_ context.Context, storeID, productID int64, after, until time.Time) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movements {
		if m.StoreID == storeID && m.ProductID == productID && m.Date.After(after) && !m.Date.After(until) {
			out = append(out, m)
		}
	}
	sortByDate(out)
	return out, nil
}

func (r *fakeMovementRepo) ListByStoreUntil(_ context.Context, storeID int64, until time.Time) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movements {
		if m.StoreID == storeID && !m.Date.After(until) {
			out = append(out, m)
		}
	}
	sortByDate(out)
	return out, nil
}

func (r *fakeMovementRepo) ListByStore(_ context.Context, storeID int64, from, to time.Time, limit, offset int) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movements {
		if m.StoreID == storeID && !m.Date.Before(from) && !m.Date.After(to) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) ExitsByDay(_ context.Context, storeID int64, productID *int64, from, to time.Time) ([]repository.DailyExit, error) {
	totals := make(map[int64]map[time.Time]decimal.Decimal)
	for _, m := range r.movements {
		if m.StoreID != storeID || m.Type != entity.MovementTypeOUT {
			continue
		}
		if productID != nil && m.ProductID != *productID {
			continue
		}
		if m.Date.Before(from) || m.Date.After(to) {
			continue
		}
		day := domaininv.StartOfDay(m.Date)
		if totals[m.ProductID] == nil {
			totals[m.ProductID] = make(map[time.Time]decimal.Decimal)
		}
		totals[m.ProductID][day] = totals[m.ProductID][day].Add(m.Quantity)
	}

	var out []repository.DailyExit
	for pid, days := range totals {
		for day, qty := range days {
			out = append(out, repository.DailyExit{ProductID: pid, Day: day, Quantity: qty})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].Day.Before(out[j].Day)
	})
	return out, nil
}

func sortByDate(ms []*entity.Movement) {
	sort.SliceStable(ms, func(i, j int) bool {
		if !ms[i].Date.Equal(ms[j].Date) {
			return ms[i].Date.Before(ms[j].Date)
		}
		return ms[i].ID < ms[j].ID
	})
}

type snapKey struct{ storeID, productID int64 }

type fakeSnapshotRepo struct {
	snaps map[snapKey]*entity.StockSnapshot
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{snaps: make(map[snapKey]*entity.StockSnapshot)}
}

func (r *fakeSnapshotRepo) Get(_ context.Context, storeID, productID int64) (*entity.StockSnapshot, error) {
	s, ok := r.snaps[snapKey{storeID, productID}]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSnapshotRepo) ListByStore(_ context.Context, storeID int64) ([]*entity.StockSnapshot, error) {
	var out []*entity.StockSnapshot
	for k, s := range r.snaps {
		if k.storeID == storeID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (r *fakeSnapshotRepo) Put(_ context.Context, snap *entity.StockSnapshot) error {
	cp := *snap
	r.snaps[snapKey{snap.StoreID, snap.ProductID}] = &cp
	return nil
}

func (r *fakeSnapshotRepo) ApplyDelta(_ context.Context, storeID, productID int64, delta decimal.Decimal, at time.Time) error {
	k := snapKey{storeID, productID}
	s, ok := r.snaps[k]
	if !ok {
		r.snaps[k] = &entity.StockSnapshot{
			StoreID: storeID, ProductID: productID, Quantity: delta, UpdatedTime: at,
		}
		return nil
	}
	s.Quantity = s.Quantity.Add(delta)
	s.UpdatedTime = at
	return nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
}

type fakeStoreRepo struct {
	stores []*entity.Store
}

func (r *fakeStoreRepo) List(_ context.Context) ([]*entity.Store, error) {
	return r.stores, nil
}

func (r *fakeStoreRepo) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("tienda %d: %w", id, domain.ErrNotFound)
}

// fakeTxRunner ejecuta el callback directo sobre los fakes (sin rollback; los
// tests que validan atomicidad verifican que la validación ocurre antes de la tx).
type fakeTxRunner struct {
	movRepo  *fakeMovementRepo
	snapRepo *fakeSnapshotRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	snapRepo repository.SnapshotRepository,
) error) error {
	return fn(r.movRepo, r.snapRepo)
}

// fakeParser devuelve una factura fija (para el importador de XML).
type fakeParser struct {
	invoice *inventory.ParsedInvoice
	err     error
}

func (p *fakeParser) Parse(_ []byte) (*inventory.ParsedInvoice, error) {
	return p.invoice, p.err
}
