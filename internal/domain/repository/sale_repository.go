package repository

import (
	"context"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	List(ctx context.Context) ([]entity.Sale, error)
	Create(ctx context.Context, sale *entity.Sale) error
}
