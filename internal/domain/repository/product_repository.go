package repository

import (
	"context"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// Filtros de stock para el listado de productos.
const (
	StockFilterIn       = "in-stock"
	StockFilterLow      = "low-stock"
	StockFilterOut      = "out-of-stock"
	StockFilterExpiring = "expiring"
)

// ProductFilter criterios opcionales de listado (vacío = sin filtro).
type ProductFilter struct {
	Search   string
	Category string
	Stock    string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List(ctx context.Context, f ProductFilter) ([]entity.Product, error)
	GetByID(ctx context.Context, id int) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, id int, patch entity.ProductPatch) (*entity.Product, error)
	// AdjustStock suma delta al stock; falla con ErrInsufficientStock si el resultado sería negativo.
	AdjustStock(ctx context.Context, id int, delta int) (*entity.Product, error)
	Delete(ctx context.Context, id int) error
}
