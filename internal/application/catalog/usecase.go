package catalog

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jcastro/estoque-api/internal/domain/entity"
	"github.com/jcastro/estoque-api/internal/domain/repository"
)

// Orden fijo de exhibición de categorías. Es una convención de presentación
// que el core solo consume: categorías desconocidas quedan al final.
var categoryDisplayOrder = []string{
	"Açaí",
	"Sorvetes",
	"Polpa",
	"Complementos",
	"Embalagens Distribuidora",
	"Uso e Consumo",
}

// CategoryRank posición de la categoría en el orden de exhibición.
func CategoryRank(category string) int {
	for i, c := range categoryDisplayOrder {
		if c == category {
			return i
		}
	}
	return len(categoryDisplayOrder)
}

// UseCase vista de solo lectura del catálogo de productos y tiendas.
type UseCase struct {
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

// NewUseCase construye el caso de uso de catálogo.
func NewUseCase(productRepo repository.ProductRepository, storeRepo repository.StoreRepository) *UseCase {
	return &UseCase{productRepo: productRepo, storeRepo: storeRepo}
}

// ListProducts lista el catálogo en orden de exhibición (categoría, nombre),
// opcionalmente filtrado por nombre. El filtro ignora mayúsculas y acentos
// ("acai" encuentra "Açaí").
func (uc *UseCase) ListProducts(ctx context.Context, search string) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if search != "" {
		needle := foldForSearch(search)
		filtered := make([]*entity.Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(foldForSearch(p.Name), needle) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	sort.SliceStable(products, func(i, j int) bool {
		ri, rj := CategoryRank(products[i].Category), CategoryRank(products[j].Category)
		if ri != rj {
			return ri < rj
		}
		return products[i].Name < products[j].Name
	})
	return products, nil
}

// GetProduct devuelve un producto por id (domain.ErrNotFound si no existe).
func (uc *UseCase) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// ListStores lista las tiendas ordenadas por nombre.
func (uc *UseCase) ListStores(ctx context.Context) ([]*entity.Store, error) {
	stores, err := uc.storeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stores, func(i, j int) bool { return stores[i].Name < stores[j].Name })
	return stores, nil
}

// foldForSearch normaliza para comparación: minúsculas y sin marcas
// diacríticas (NFD, remover Mn, NFC).
func foldForSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
