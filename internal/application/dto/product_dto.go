package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. ExpiryDate en formato YYYY-MM-DD (opcional).
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Category    string          `json:"category" validate:"required"`
	Stock       int             `json:"stock" validate:"min=0"`
	Unit        string          `json:"unit" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	ExpiryDate  string          `json:"expiry_date"`
	Description string          `json:"description"`
}

// UpdateProductRequest actualización parcial: los campos nil no se modifican.
// ExpiryDate = "" elimina la fecha de vencimiento.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SKU         *string          `json:"sku"`
	Category    *string          `json:"category"`
	Stock       *int             `json:"stock"`
	Unit        *string          `json:"unit"`
	Price       *decimal.Decimal `json:"price"`
	ExpiryDate  *string          `json:"expiry_date"`
	Description *string          `json:"description"`
}

// ProductResponse salida de un producto con su estado de visualización calculado.
type ProductResponse struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Category      string          `json:"category"`
	Stock         int             `json:"stock"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	ExpiryDate    string          `json:"expiry_date,omitempty"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
	Status        string          `json:"status"`
	Discount      decimal.Decimal `json:"discount"`
	DisplayPrice  decimal.Decimal `json:"display_price"`
	DaysRemaining *int            `json:"days_remaining,omitempty"`
	Value         decimal.Decimal `json:"value"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// ProductFilterRequest filtros de GET /api/products.
type ProductFilterRequest struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Stock    string `query:"stock"` // in-stock | low-stock | out-of-stock | expiring
}
