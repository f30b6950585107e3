package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/application/dto"
	appinv "github.com/jcastro/estoque-api/internal/application/inventory"
	"github.com/jcastro/estoque-api/internal/domain/entity"
)

// MovementHandler escritura del libro de movimientos: correcciones manuales,
// traslados, conteos físicos, importación de XML y consulta del historial.
type MovementHandler struct {
	correction *appinv.CorrectionUseCase
	entries    *appinv.EntryImportUseCase
	history    *appinv.HistoryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	correction *appinv.CorrectionUseCase,
	entries *appinv.EntryImportUseCase,
	history *appinv.HistoryUseCase,
) *MovementHandler {
	return &MovementHandler{correction: correction, entries: entries, history: history}
}

type correctionFn func(ctx context.Context, storeID, productID int64, qty decimal.Decimal, note string) error

func (h *MovementHandler) correct(c *fiber.Ctx, apply correctionFn) error {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CorrectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := apply(c.Context(), storeID, in.ProductID, in.Quantity, in.Note); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "corrección registrada"})
}

// AddStock godoc
// @Summary      Agregar stock manualmente (mantenimiento)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "id de la tienda"
// @Param        body  body  dto.CorrectionRequest  true  "product_id, quantity > 0, note opcional"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/corrections/add [post]
func (h *MovementHandler) AddStock(c *fiber.Ctx) error {
	return h.correct(c, h.correction.AddStock)
}

// RemoveStock godoc
// @Summary      Quitar stock manualmente (mantenimiento)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "id de la tienda"
// @Param        body  body  dto.CorrectionRequest  true  "product_id, quantity > 0, note opcional"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/corrections/remove [post]
func (h *MovementHandler) RemoveStock(c *fiber.Ctx) error {
	return h.correct(c, h.correction.RemoveStock)
}

// Transfer godoc
// @Summary      Trasladar stock entre tiendas
// @Description  Escribe un OUT en origen y un IN en destino con el mismo
//               transaction_id, todo o nada.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "from_store_id, to_store_id, product_id, quantity > 0"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.correction.Transfer(c.Context(), in.FromStoreID, in.ToStoreID, in.ProductID, in.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "traslado registrado"})
}

// RegisterCount godoc
// @Summary      Registrar conteo físico de inventario
// @Description  Reemplaza el snapshot con la cantidad contada y agrega al libro
//               un ADJUSTMENT con el delta contra el stock reconstruido, en una
//               sola transacción. count_time RFC3339; vacío = ahora.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "id de la tienda"
// @Param        body  body  dto.CountRequest  true  "product_id, quantity >= 0, count_time opcional"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/counts [post]
func (h *MovementHandler) RegisterCount(c *fiber.Ctx) error {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	countTime := time.Now().UTC()
	if in.CountTime != "" {
		t, err := time.Parse(time.RFC3339, in.CountTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "count_time inválido, formato RFC3339"})
		}
		countTime = t.UTC()
	}
	if err := h.correction.RegisterCount(c.Context(), storeID, in.ProductID, in.Quantity, countTime); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "conteo registrado"})
}

// ImportEntries godoc
// @Summary      Importar entradas desde un XML de proveedor (NF-e)
// @Description  Cada línea de la factura cuyo código coincide con un producto
//               del catálogo genera un IN; todas las entradas del documento se
//               escriben en una sola transacción.
// @Tags         movements
// @Security     Bearer
// @Accept       application/xml
// @Produce      json
// @Param        id   path  int     true  "id de la tienda"
// @Param        doc  body  string  true  "documento XML NF-e"
// @Success      201  {object}  dto.ImportEntriesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/entries/import [post]
func (h *MovementHandler) ImportEntries(c *fiber.Ctx) error {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	doc := c.Body()
	if len(doc) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "documento XML vacío"})
	}
	imported, err := h.entries.ImportEntries(c.Context(), storeID, doc)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ImportEntriesResponse{StoreID: storeID, Imported: imported})
}

// ListMovements godoc
// @Summary      Historial de movimientos de una tienda
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id      path   int     true   "id de la tienda"
// @Param        from    query  string  true   "inicio YYYY-MM-DD"
// @Param        to      query  string  true   "fin YYYY-MM-DD"
// @Param        limit   query  int     false  "máximo de filas (default 50)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}   dto.MovementDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/movements [get]
func (h *MovementHandler) ListMovements(c *fiber.Ctx) error {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	from, err := parseDayQuery(c, "from")
	if err != nil {
		return respondError(c, err)
	}
	to, err := parseDayQuery(c, "to")
	if err != nil {
		return respondError(c, err)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	movements, err := h.history.ListMovements(c.Context(), storeID, from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementDTO(m))
	}
	return c.JSON(out)
}

func toMovementDTO(m *entity.Movement) dto.MovementDTO {
	return dto.MovementDTO{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		StoreID:       m.StoreID,
		ProductID:     m.ProductID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		Reason:        m.Reason,
		Date:          m.Date,
		CreatedAt:     m.CreatedAt,
	}
}
