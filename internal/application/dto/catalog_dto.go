package dto

import "github.com/shopspring/decimal"

// ProductDTO producto del catálogo.
type ProductDTO struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	IssueUnit        string          `json:"issue_unit"`
	PurchaseUnit     string          `json:"purchase_unit"`
	ConversionFactor decimal.Decimal `json:"conversion_factor"`
}

// StoreDTO tienda.
type StoreDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
