package dto

import "github.com/shopspring/decimal"

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto.
type ReplenishmentSuggestionDTO struct {
	Priority           int             `json:"priority"`
	ProductID          int             `json:"product_id"`
	SKU                string          `json:"sku"`
	ProductName        string          `json:"product_name"`
	Unit               string          `json:"unit"`
	CurrentStock       int             `json:"current_stock"`
	ReorderPoint       int             `json:"reorder_point"`
	IdealStock         int             `json:"ideal_stock"`
	SuggestedOrderQty  int             `json:"suggested_order_qty"`
	UnitCost           decimal.Decimal `json:"unit_cost"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"`
	UnitsSoldRecently  int             `json:"units_sold_last_90_days"`
}
