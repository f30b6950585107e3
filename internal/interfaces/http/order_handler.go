package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/estoque-api/internal/application/dto"
	"github.com/jcastro/estoque-api/internal/application/purchase"
)

// OrderHandler pedidos de compra persistidos.
type OrderHandler struct {
	uc *purchase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *purchase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// CreateOrder godoc
// @Summary      Crear pedido de compra
// @Description  Persiste cabecera y líneas en una transacción. Las líneas van
//               en unidades de compra y deben ser > 0: una línea en cero
//               rechaza el pedido completo.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "id de la tienda"
// @Param        body  body  dto.CreateOrderRequest  true  "líneas del pedido"
// @Success      201   {object}  dto.OrderDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/orders [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]purchase.OrderItemInput, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, purchase.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	orderID, err := h.uc.CreateOrder(c.Context(), storeID, items)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": orderID, "store_id": storeID})
}

// ListOrders godoc
// @Summary      Listar pedidos de una tienda
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id de la tienda"
// @Success      200  {array}   dto.OrderDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	orders, err := h.uc.ListOrders(c.Context(), storeID)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderDTO{ID: o.ID, StoreID: o.StoreID, CreatedAt: o.CreatedAt})
	}
	return c.JSON(out)
}

// GetOrderItems godoc
// @Summary      Líneas de un pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "id del pedido"
// @Success      200  {array}   dto.OrderItemDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/items [get]
func (h *OrderHandler) GetOrderItems(c *fiber.Ctx) error {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	items, err := h.uc.GetOrderItems(c.Context(), orderID)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.OrderItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.OrderItemDTO{ProductID: it.ProductID, ProductName: it.ProductName, Quantity: it.Quantity})
	}
	return c.JSON(out)
}
