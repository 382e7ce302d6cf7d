package dto

import "github.com/shopspring/decimal"

// RecordSaleRequest entrada de POST /api/sales. Customer vacío = "Retail Customer".
type RecordSaleRequest struct {
	ProductID int    `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Customer  string `json:"customer"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID          int             `json:"id"`
	Date        string          `json:"date"`
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	Customer    string          `json:"customer"`
}

// RecordSaleResponse venta más el stock que quedó en el producto.
type RecordSaleResponse struct {
	Sale           SaleResponse `json:"sale"`
	RemainingStock int          `json:"remaining_stock"`
}
