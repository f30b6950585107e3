package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/domain/entity"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*CachedProductRepo)(nil)

// CachedProductRepo decorador read-through sobre el catálogo: lee de Redis y
// ante un miss (o cualquier error de cache) cae al repositorio real y repuebla.
// El catálogo cambia poco; un TTL corto evita invalidación explícita.
type CachedProductRepo struct {
	inner repository.ProductRepository
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachedProductRepo construye el decorador de catálogo.
func NewCachedProductRepo(inner repository.ProductRepository, rdb *redis.Client, ttl time.Duration) *CachedProductRepo {
	return &CachedProductRepo{inner: inner, rdb: rdb, ttl: ttl}
}

// productPayload forma serializada en cache. Decimal viaja como string para
// no perder precisión en JSON.
type productPayload struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	IssueUnit        string `json:"issue_unit"`
	PurchaseUnit     string `json:"purchase_unit"`
	ConversionFactor string `json:"conversion_factor"`
}

func toPayload(p *entity.Product) productPayload {
	return productPayload{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		IssueUnit:        p.IssueUnit,
		PurchaseUnit:     p.PurchaseUnit,
		ConversionFactor: p.ConversionFactor.String(),
	}
}

func fromPayload(pl productPayload) (*entity.Product, error) {
	factor, err := decimal.NewFromString(pl.ConversionFactor)
	if err != nil {
		return nil, fmt.Errorf("conversion factor en cache: %w", err)
	}
	return &entity.Product{
		ID:               pl.ID,
		Name:             pl.Name,
		Category:         pl.Category,
		IssueUnit:        pl.IssueUnit,
		PurchaseUnit:     pl.PurchaseUnit,
		ConversionFactor: factor,
	}, nil
}

const productsListKey = "catalog:products"

func productKey(id int64) string {
	return fmt.Sprintf("catalog:product:%d", id)
}

// List devuelve el catálogo completo, cacheado bajo una sola clave.
func (r *CachedProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	if data, err := r.rdb.Get(ctx, productsListKey).Bytes(); err == nil {
		var payloads []productPayload
		if err := json.Unmarshal(data, &payloads); err == nil {
			products := make([]*entity.Product, 0, len(payloads))
			ok := true
			for _, pl := range payloads {
				p, err := fromPayload(pl)
				if err != nil {
					ok = false
					break
				}
				products = append(products, p)
			}
			if ok {
				return products, nil
			}
		}
	}

	products, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	payloads := make([]productPayload, 0, len(products))
	for _, p := range products {
		payloads = append(payloads, toPayload(p))
	}
	if data, err := json.Marshal(payloads); err == nil {
		_ = r.rdb.Set(ctx, productsListKey, data, r.ttl).Err()
	}
	return products, nil
}

// GetByID devuelve un producto, cacheado por id.
func (r *CachedProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	if data, err := r.rdb.Get(ctx, productKey(id)).Bytes(); err == nil {
		var pl productPayload
		if err := json.Unmarshal(data, &pl); err == nil {
			if p, err := fromPayload(pl); err == nil {
				return p, nil
			}
		}
	}

	p, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(toPayload(p)); err == nil {
		_ = r.rdb.Set(ctx, productKey(id), data, r.ttl).Err()
	}
	return p, nil
}
