package document

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// SupplierRepository implementación de repository.SupplierRepository sobre el documento.
type SupplierRepository struct {
	session Session
	now     Clock
}

// NewSupplierRepository construye el repositorio.
func NewSupplierRepository(session Session, now Clock) *SupplierRepository {
	return &SupplierRepository{session: session, now: now}
}

// List devuelve los proveedores filtrados por texto (nombre, contacto, email), categoría y estado.
func (r *SupplierRepository) List(ctx context.Context, f repository.SupplierFilter) ([]entity.Supplier, error) {
	out := []entity.Supplier{}
	search := strings.ToLower(strings.TrimSpace(f.Search))
	err := r.session.View(ctx, func(doc *entity.Document) error {
		for _, s := range doc.Suppliers {
			if search != "" && !containsAny(search, s.Name, s.Contact, s.Email) {
				continue
			}
			if f.Category != "" && s.Category != f.Category {
				continue
			}
			if f.Status != "" && s.Status != f.Status {
				continue
			}
			out = append(out, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un proveedor; ErrSupplierNotFound si no existe.
func (r *SupplierRepository) GetByID(ctx context.Context, id int) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.session.View(ctx, func(doc *entity.Document) error {
		s := doc.FindSupplier(id)
		if s == nil {
			return domain.ErrSupplierNotFound
		}
		c := *s
		out = &c
		return nil
	})
	return out, err
}

// Create asigna id y fecha de creación. El estado vacío se toma como Active.
func (r *SupplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.Status == "" {
		supplier.Status = entity.SupplierActive
	}
	if err := supplier.Validate(); err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	return r.session.Update(ctx, func(doc *entity.Document) error {
		supplier.ID = entity.NextID(doc.Suppliers, func(s entity.Supplier) int { return s.ID })
		supplier.CreatedAt = stamp(r.now)
		doc.Suppliers = append(doc.Suppliers, *supplier)
		return nil
	})
}

// Update aplica el patch y devuelve el proveedor resultante.
func (r *SupplierRepository) Update(ctx context.Context, id int, patch entity.SupplierPatch) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.session.Update(ctx, func(doc *entity.Document) error {
		s := doc.FindSupplier(id)
		if s == nil {
			return domain.ErrSupplierNotFound
		}
		merged := *s
		patch.Apply(&merged)
		if err := merged.Validate(); err != nil {
			return fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
		}
		*s = merged
		out = &merged
		return nil
	})
	return out, err
}

// Delete elimina el proveedor. Las órdenes que lo referencian lo muestran como "Unknown Supplier".
func (r *SupplierRepository) Delete(ctx context.Context, id int) error {
	return r.session.Update(ctx, func(doc *entity.Document) error {
		for i := range doc.Suppliers {
			if doc.Suppliers[i].ID == id {
				doc.Suppliers = append(doc.Suppliers[:i], doc.Suppliers[i+1:]...)
				return nil
			}
		}
		return domain.ErrSupplierNotFound
	})
}

func containsAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
