package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockResponse stock reconstruido de un producto a un instante.
type StockResponse struct {
	StoreID   int64           `json:"store_id"`
	ProductID int64           `json:"product_id"`
	At        time.Time       `json:"at"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// ProductStockDTO línea de la variante batch de stock.
type ProductStockDTO struct {
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// StoreStockResponse stock de todos los productos de una tienda a un instante.
// Inconsistent marca que al menos un producto reconstruyó stock negativo; las
// cantidades se conservan (negativas incluidas) para diagnóstico.
type StoreStockResponse struct {
	StoreID      int64             `json:"store_id"`
	At           time.Time         `json:"at"`
	Items        []ProductStockDTO `json:"items"`
	Inconsistent bool              `json:"inconsistent,omitempty"`
}

// ConsumptionResponse tasa de consumo diario de un producto en un período.
type ConsumptionResponse struct {
	StoreID             int64           `json:"store_id"`
	ProductID           int64           `json:"product_id"`
	PeriodStart         string          `json:"period_start"`
	PeriodEnd           string          `json:"period_end"`
	SmoothingWindowDays int             `json:"smoothing_window_days,omitempty"`
	DailyConsumption    decimal.Decimal `json:"daily_consumption"`
}

// CorrectionRequest corrección manual de stock (agregar o quitar).
type CorrectionRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Note      string          `json:"note"`
}

// TransferRequest traslado de stock entre tiendas.
type TransferRequest struct {
	FromStoreID int64           `json:"from_store_id"`
	ToStoreID   int64           `json:"to_store_id"`
	ProductID   int64           `json:"product_id"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// CountRequest conteo físico de inventario. CountTime en RFC3339; vacío = ahora.
type CountRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	CountTime string          `json:"count_time"`
}

// MovementDTO registro del libro de movimientos.
type MovementDTO struct {
	ID            int64           `json:"id"`
	TransactionID string          `json:"transaction_id"`
	StoreID       int64           `json:"store_id"`
	ProductID     int64           `json:"product_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	Reason        string          `json:"reason"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ReplenishmentSuggestionDTO sugerencia de compra por producto.
type ReplenishmentSuggestionDTO struct {
	ProductID              int64           `json:"product_id"`
	Name                   string          `json:"name"`
	Category               string          `json:"category"`
	CurrentStock           decimal.Decimal `json:"current_stock"`
	DailyConsumption       decimal.Decimal `json:"daily_consumption"`
	GapDays                int             `json:"gap_days"`
	CoverageDays           int             `json:"coverage_days"`
	TargetStock            decimal.Decimal `json:"target_stock"`
	SuggestedIssueUnits    decimal.Decimal `json:"suggested_issue_units"`
	SuggestedPurchaseUnits decimal.Decimal `json:"suggested_purchase_units"`
}

// ImportEntriesResponse resultado de importar un XML de proveedor.
type ImportEntriesResponse struct {
	StoreID  int64 `json:"store_id"`
	Imported int   `json:"imported"`
}
