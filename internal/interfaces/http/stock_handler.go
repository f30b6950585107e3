package http

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/estoque-api/internal/application/dto"
	appinv "github.com/jcastro/estoque-api/internal/application/inventory"
	"github.com/jcastro/estoque-api/internal/domain"
	domaininv "github.com/jcastro/estoque-api/internal/domain/inventory"
)

// StockHandler consultas de stock reconstruido y consumo.
type StockHandler struct {
	stock       *appinv.StockUseCase
	consumption *appinv.ConsumptionUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(stock *appinv.StockUseCase, consumption *appinv.ConsumptionUseCase) *StockHandler {
	return &StockHandler{stock: stock, consumption: consumption}
}

// instantQuery lee el query param at (YYYY-MM-DD -> fin de ese día UTC).
// Vacío = ahora.
func instantQuery(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("at")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: at inválido, formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return domaininv.EndOfDay(day), nil
}

// GetStock godoc
// @Summary      Stock de un producto a un instante
// @Description  Reconstruye el stock desde el último snapshot más el libro de
//               movimientos. Un resultado negativo es 409 (libro inconsistente).
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id         path   int     true   "id de la tienda"
// @Param        productId  path   int     true   "id del producto"
// @Param        at         query  string  false  "fecha YYYY-MM-DD (fin del día). Vacío = ahora."
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/stock/{productId} [get]
func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return respondError(c, err)
	}
	at, err := instantQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	qty, err := h.stock.StockAt(c.Context(), storeID, productID, at)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockResponse{StoreID: storeID, ProductID: productID, At: at, Quantity: qty})
}

// GetStoreStock godoc
// @Summary      Stock de todos los productos de una tienda a un instante
// @Description  Variante batch: un solo barrido del libro. Si algún producto
//               reconstruye negativo la respuesta marca inconsistent=true y
//               conserva las cantidades (negativas incluidas) para diagnóstico.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path   int     true   "id de la tienda"
// @Param        at  query  string  false  "fecha YYYY-MM-DD (fin del día). Vacío = ahora."
// @Success      200  {object}  dto.StoreStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/stock [get]
func (h *StockHandler) GetStoreStock(c *fiber.Ctx) error {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	at, err := instantQuery(c)
	if err != nil {
		return respondError(c, err)
	}
	stocks, err := h.stock.StockAtForAllProducts(c.Context(), storeID, at)
	inconsistent := false
	if err != nil {
		if !errors.Is(err, domain.ErrInconsistentLedger) {
			return respondError(c, err)
		}
		inconsistent = true
	}

	items := make([]dto.ProductStockDTO, 0, len(stocks))
	for productID, qty := range stocks {
		items = append(items, dto.ProductStockDTO{ProductID: productID, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	return c.JSON(dto.StoreStockResponse{StoreID: storeID, At: at, Items: items, Inconsistent: inconsistent})
}

// GetConsumption godoc
// @Summary      Tasa de consumo diario de un producto en un período
// @Description  Salidas del libro divididas por los días del período
//               [start, end]. window > 0 usa solo los últimos N días (tasa
//               suavizada). start == end es período inválido (422).
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id         path   int     true   "id de la tienda"
// @Param        productId  path   int     true   "id del producto"
// @Param        start      query  string  true   "inicio YYYY-MM-DD"
// @Param        end        query  string  true   "fin YYYY-MM-DD"
// @Param        window     query  int     false  "ventana de suavizado en días (0 = tasa plana)"
// @Success      200  {object}  dto.ConsumptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/consumption/{productId} [get]
func (h *StockHandler) GetConsumption(c *fiber.Ctx) error {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return respondError(c, err)
	}
	start, err := parseDayQuery(c, "start")
	if err != nil {
		return respondError(c, err)
	}
	end, err := parseDayQuery(c, "end")
	if err != nil {
		return respondError(c, err)
	}
	window, _ := strconv.Atoi(c.Query("window", "0"))

	rate, err := h.consumption.DailyConsumption(c.Context(), storeID, productID, start, end, window)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ConsumptionResponse{
		StoreID:             storeID,
		ProductID:           productID,
		PeriodStart:         start.Format("2006-01-02"),
		PeriodEnd:           end.Format("2006-01-02"),
		SmoothingWindowDays: window,
		DailyConsumption:    rate,
	})
}
