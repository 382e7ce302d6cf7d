package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemDTO línea de una orden de compra.
type OrderItemDTO struct {
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// CreateOrderRequest entrada para crear una orden. Date vacío = hoy; Status vacío = Pending.
type CreateOrderRequest struct {
	SupplierID int            `json:"supplier_id" validate:"required"`
	Date       string         `json:"date"`
	Status     string         `json:"status"`
	Items      []OrderItemDTO `json:"items" validate:"required,min=1"`
	Notes      string         `json:"notes"`
}

// UpdateOrderRequest actualización parcial. Un cambio de Status respeta el ciclo de vida.
type UpdateOrderRequest struct {
	SupplierID *int            `json:"supplier_id"`
	Date       *string         `json:"date"`
	Status     *string         `json:"status"`
	Items      *[]OrderItemDTO `json:"items"`
	Notes      *string         `json:"notes"`
}

// OrderResponse orden con nombre de proveedor y total calculados.
type OrderResponse struct {
	ID           int             `json:"id"`
	PONumber     string          `json:"po_number"`
	SupplierID   int             `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
	Items        []OrderItemDTO  `json:"items"`
	Notes        string          `json:"notes"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrderFilterRequest filtros de GET /api/orders.
type OrderFilterRequest struct {
	Search string `query:"search"`
	Status string `query:"status"`
	Date   string `query:"date"` // today | week | month | quarter
}
