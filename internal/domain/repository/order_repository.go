package repository

import (
	"context"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// Ventanas de fecha para el listado de órdenes.
const (
	DateWindowToday   = "today"
	DateWindowWeek    = "week"
	DateWindowMonth   = "month"
	DateWindowQuarter = "quarter"
)

// OrderFilter criterios opcionales de listado de órdenes.
// Search busca en número de PO y nombre del proveedor; Window es relativa a Today.
type OrderFilter struct {
	Search string
	Status string
	Window string
	Today  entity.Date
}

// OrderRepository define el puerto de persistencia para Order.
// Las lecturas devuelven la proyección OrderView (proveedor y total calculados).
type OrderRepository interface {
	List(ctx context.Context, f OrderFilter) ([]entity.OrderView, error)
	GetByID(ctx context.Context, id int) (*entity.OrderView, error)
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, id int, patch entity.OrderPatch) (*entity.OrderView, error)
	Delete(ctx context.Context, id int) error
}
