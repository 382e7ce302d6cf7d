package repository

import (
	"context"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// SupplierFilter criterios opcionales de listado de proveedores.
type SupplierFilter struct {
	Search   string
	Category string
	Status   string
}

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	List(ctx context.Context, f SupplierFilter) ([]entity.Supplier, error)
	GetByID(ctx context.Context, id int) (*entity.Supplier, error)
	Create(ctx context.Context, supplier *entity.Supplier) error
	Update(ctx context.Context, id int, patch entity.SupplierPatch) (*entity.Supplier, error)
	Delete(ctx context.Context, id int) error
}
