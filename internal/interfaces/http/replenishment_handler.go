package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/application/dto"
	appinv "github.com/jcastro/estoque-api/internal/application/inventory"
	"github.com/jcastro/estoque-api/internal/domain"
)

// ReplenishmentHandler sugerencias de compra.
type ReplenishmentHandler struct {
	uc *appinv.ReplenishmentUseCase
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(uc *appinv.ReplenishmentUseCase) *ReplenishmentHandler {
	return &ReplenishmentHandler{uc: uc}
}

// Suggest godoc
// @Summary      Sugerencia de reposición por producto
// @Description  Combina la tasa de consumo del período, el stock al fin del
//               período y la cobertura (periodicidad + días hasta la llegada)
//               en una cantidad sugerida por producto, en unidades de salida y
//               de compra. Incluye productos sin historia (necesidad futura).
// @Tags         replenishment
// @Security     Bearer
// @Produce      json
// @Param        id                path   int     true   "id de la tienda"
// @Param        period_start      query  string  true   "inicio del período YYYY-MM-DD"
// @Param        period_end        query  string  true   "fin del período YYYY-MM-DD"
// @Param        next_arrival      query  string  true   "llegada del próximo camión YYYY-MM-DD"
// @Param        periodicity_days  query  int     true   "periodicidad de la ruta en días (>= 1)"
// @Param        safety_fraction   query  string  false  "fracción extra sobre el objetivo (ej. 0.1)"
// @Param        smoothing_window  query  int     false  "ventana de suavizado en días (0 = tasa plana)"
// @Success      200  {array}   dto.ReplenishmentSuggestionDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/replenishment [get]
func (h *ReplenishmentHandler) Suggest(c *fiber.Ctx) error {
	storeID, err := parseIDParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	periodStart, err := parseDayQuery(c, "period_start")
	if err != nil {
		return respondError(c, err)
	}
	periodEnd, err := parseDayQuery(c, "period_end")
	if err != nil {
		return respondError(c, err)
	}
	nextArrival, err := parseDayQuery(c, "next_arrival")
	if err != nil {
		return respondError(c, err)
	}
	periodicity, err := strconv.Atoi(c.Query("periodicity_days"))
	if err != nil {
		return respondError(c, fmt.Errorf("%w: periodicity_days debe ser entero", domain.ErrInvalidInput))
	}

	policy := appinv.SuggestPolicy{SafetyFraction: decimal.Zero}
	if raw := c.Query("safety_fraction"); raw != "" {
		sf, err := decimal.NewFromString(raw)
		if err != nil {
			return respondError(c, fmt.Errorf("%w: safety_fraction inválida", domain.ErrInvalidInput))
		}
		policy.SafetyFraction = sf
	}
	if raw := c.Query("smoothing_window"); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil || w < 0 {
			return respondError(c, fmt.Errorf("%w: smoothing_window inválida", domain.ErrInvalidInput))
		}
		policy.SmoothingWindowDays = w
	}

	suggestions, err := h.uc.Suggest(c.Context(), storeID, periodStart, periodEnd, nextArrival, periodicity, policy)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.ReplenishmentSuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.ReplenishmentSuggestionDTO{
			ProductID:              s.ProductID,
			Name:                   s.Name,
			Category:               s.Category,
			CurrentStock:           s.CurrentStock,
			DailyConsumption:       s.DailyConsumption,
			GapDays:                s.GapDays,
			CoverageDays:           s.CoverageDays,
			TargetStock:            s.TargetStock,
			SuggestedIssueUnits:    s.SuggestedIssueUnits,
			SuggestedPurchaseUnits: s.SuggestedPurchaseUnits,
		})
	}
	return c.JSON(out)
}
