package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/estoque-api/internal/application/catalog"
	"github.com/jcastro/estoque-api/internal/application/dto"
	"github.com/jcastro/estoque-api/internal/domain/entity"
)

// CatalogHandler catálogo de productos y tiendas (solo lectura).
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func toProductDTO(p *entity.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		IssueUnit:        p.IssueUnit,
		PurchaseUnit:     p.PurchaseUnit,
		ConversionFactor: p.ConversionFactor,
	}
}

// ListProducts godoc
// @Summary      Listar productos del catálogo
// @Description  Ordenados por categoría (orden del negocio) y nombre. El filtro
//               search es insensible a mayúsculas y acentos.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "filtro por nombre"
// @Success      200  {array}   dto.ProductDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.uc.ListProducts(c.Context(), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return c.JSON(out)
}

// GetProduct godoc
// @Summary      Obtener un producto por id
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id del producto"
// @Success      200  {object}  dto.ProductDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	p, err := h.uc.GetProduct(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductDTO(p))
}

// ListStores godoc
// @Summary      Listar tiendas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StoreDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/stores [get]
func (h *CatalogHandler) ListStores(c *fiber.Ctx) error {
	stores, err := h.uc.ListStores(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.StoreDTO, 0, len(stores))
	for _, s := range stores {
		out = append(out, dto.StoreDTO{ID: s.ID, Name: s.Name})
	}
	return c.JSON(out)
}
