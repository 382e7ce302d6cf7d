package document

import (
	"context"
	"fmt"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepository)(nil)

// SaleRepository implementación de repository.SaleRepository sobre el documento.
// No toca el stock: el descuento lo hace SalesUseCase dentro de la misma transacción.
type SaleRepository struct {
	session Session
	now     Clock
}

// NewSaleRepository construye el repositorio.
func NewSaleRepository(session Session, now Clock) *SaleRepository {
	return &SaleRepository{session: session, now: now}
}

// List devuelve las ventas en orden de registro.
func (r *SaleRepository) List(ctx context.Context) ([]entity.Sale, error) {
	out := []entity.Sale{}
	err := r.session.View(ctx, func(doc *entity.Document) error {
		out = append(out, doc.Sales...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create asigna id y, si falta, la fecha de hoy.
func (r *SaleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	if sale.Quantity <= 0 {
		return fmt.Errorf("cantidad %d: %w", sale.Quantity, domain.ErrInvalidInput)
	}
	if sale.Customer == "" {
		sale.Customer = entity.DefaultCustomer
	}
	return r.session.Update(ctx, func(doc *entity.Document) error {
		sale.ID = entity.NextID(doc.Sales, func(s entity.Sale) int { return s.ID })
		if sale.Date.IsZero() {
			sale.Date = entity.DateOf(r.now())
		}
		doc.Sales = append(doc.Sales, *sale)
		return nil
	})
}
