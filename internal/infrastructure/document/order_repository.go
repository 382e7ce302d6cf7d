package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepository)(nil)

// OrderRepository implementación de repository.OrderRepository sobre el documento.
// Nombre del proveedor y total se calculan en cada lectura y nunca se guardan.
type OrderRepository struct {
	session Session
	now     Clock
}

// NewOrderRepository construye el repositorio.
func NewOrderRepository(session Session, now Clock) *OrderRepository {
	return &OrderRepository{session: session, now: now}
}

// List devuelve las órdenes (en orden de inserción) que cumplen el filtro.
func (r *OrderRepository) List(ctx context.Context, f repository.OrderFilter) ([]entity.OrderView, error) {
	out := []entity.OrderView{}
	search := strings.ToLower(strings.TrimSpace(f.Search))
	today := f.Today
	if today.IsZero() {
		today = entity.DateOf(r.now())
	}
	err := r.session.View(ctx, func(doc *entity.Document) error {
		for _, o := range doc.Orders {
			v := doc.ViewOrder(copyOrder(o))
			if search != "" && !containsAny(search, v.PONumber, v.SupplierName) {
				continue
			}
			if f.Status != "" && string(v.Status) != f.Status {
				continue
			}
			if !inWindow(v.Date, f.Window, today) {
				continue
			}
			out = append(out, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// inWindow compara la fecha de la orden con la ventana relativa a today.
// La semana es la semana ISO; mes y trimestre son calendario del mismo año.
func inWindow(d entity.Date, window string, today entity.Date) bool {
	switch window {
	case repository.DateWindowToday:
		return d.Equal(today)
	case repository.DateWindowWeek:
		y1, w1 := d.Time().ISOWeek()
		y2, w2 := today.Time().ISOWeek()
		return y1 == y2 && w1 == w2
	case repository.DateWindowMonth:
		return d.SameMonth(today)
	case repository.DateWindowQuarter:
		return d.Year() == today.Year() && quarter(d) == quarter(today)
	default:
		return true
	}
}

func quarter(d entity.Date) int {
	return (int(d.Month())-1)/3 + 1
}

// GetByID obtiene la proyección de una orden; ErrOrderNotFound si no existe.
func (r *OrderRepository) GetByID(ctx context.Context, id int) (*entity.OrderView, error) {
	var out *entity.OrderView
	err := r.session.View(ctx, func(doc *entity.Document) error {
		o := doc.FindOrder(id)
		if o == nil {
			return domain.ErrOrderNotFound
		}
		v := doc.ViewOrder(copyOrder(*o))
		out = &v
		return nil
	})
	return out, err
}

// Create valida líneas, proveedor y productos referenciados, asigna id, número de PO
// y fecha de creación. Estado vacío = Pending; fecha vacía = hoy.
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.Status == "" {
		order.Status = entity.OrderPending
	}
	if !order.Status.Valid() {
		return fmt.Errorf("estado %q: %w", order.Status, domain.ErrInvalidInput)
	}
	if err := entity.ValidateItems(order.Items); err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	return r.session.Update(ctx, func(doc *entity.Document) error {
		if err := checkReferences(doc, order.SupplierID, order.Items); err != nil {
			return err
		}
		order.ID = entity.NextID(doc.Orders, func(o entity.Order) int { return o.ID })
		order.PONumber = entity.PONumberFor(order.ID)
		if order.Date.IsZero() {
			order.Date = entity.DateOf(r.now())
		}
		order.CreatedAt = stamp(r.now)
		doc.Orders = append(doc.Orders, copyOrder(*order))
		return nil
	})
}

// Update aplica el patch tal cual. Las reglas de transición de estado y la recepción
// las aplica el caso de uso.
func (r *OrderRepository) Update(ctx context.Context, id int, patch entity.OrderPatch) (*entity.OrderView, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("estado %q: %w", *patch.Status, domain.ErrInvalidInput)
	}
	if patch.Items != nil {
		if err := entity.ValidateItems(*patch.Items); err != nil {
			return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
		}
	}
	var out *entity.OrderView
	err := r.session.Update(ctx, func(doc *entity.Document) error {
		o := doc.FindOrder(id)
		if o == nil {
			return domain.ErrOrderNotFound
		}
		if patch.SupplierID != nil && doc.FindSupplier(*patch.SupplierID) == nil {
			return fmt.Errorf("proveedor %d: %w", *patch.SupplierID, domain.ErrInvalidInput)
		}
		patch.Apply(o)
		v := doc.ViewOrder(copyOrder(*o))
		out = &v
		return nil
	})
	return out, err
}

// Delete elimina la orden; ErrOrderNotFound si no existe.
func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	return r.session.Update(ctx, func(doc *entity.Document) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID == id {
				doc.Orders = append(doc.Orders[:i], doc.Orders[i+1:]...)
				return nil
			}
		}
		return domain.ErrOrderNotFound
	})
}

func checkReferences(doc *entity.Document, supplierID int, items []entity.OrderItem) error {
	if doc.FindSupplier(supplierID) == nil {
		return fmt.Errorf("proveedor %d no existe: %w", supplierID, domain.ErrInvalidInput)
	}
	for _, it := range items {
		if doc.FindProduct(it.ProductID) == nil {
			return fmt.Errorf("producto %d no existe: %w", it.ProductID, domain.ErrInvalidInput)
		}
	}
	return nil
}

func copyOrder(o entity.Order) entity.Order {
	o.Items = append([]entity.OrderItem(nil), o.Items...)
	return o
}
