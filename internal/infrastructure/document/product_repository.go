package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/analytics"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación de repository.ProductRepository sobre el documento.
type ProductRepository struct {
	session Session
	now     Clock
}

// NewProductRepository construye el repositorio.
func NewProductRepository(session Session, now Clock) *ProductRepository {
	return &ProductRepository{session: session, now: now}
}

// List devuelve los productos en orden de inserción aplicando los filtros.
func (r *ProductRepository) List(ctx context.Context, f repository.ProductFilter) ([]entity.Product, error) {
	out := []entity.Product{}
	err := r.session.View(ctx, func(doc *entity.Document) error {
		var expiring map[int]bool
		if f.Stock == repository.StockFilterExpiring {
			expiring = map[int]bool{}
			for _, p := range analytics.ProductsNearExpiry(doc, entity.DateOf(r.now()), 0) {
				expiring[p.ID] = true
			}
		}
		low := doc.Settings.LowThreshold()
		search := strings.ToLower(strings.TrimSpace(f.Search))
		for _, p := range doc.Products {
			if search != "" && !strings.Contains(strings.ToLower(p.Name), search) &&
				!strings.Contains(strings.ToLower(p.SKU), search) {
				continue
			}
			if f.Category != "" && p.Category != f.Category {
				continue
			}
			if !matchStock(p, f.Stock, low, expiring) {
				continue
			}
			out = append(out, copyProduct(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func matchStock(p entity.Product, filter string, low int, expiring map[int]bool) bool {
	switch filter {
	case repository.StockFilterIn:
		return p.Stock > low
	case repository.StockFilterLow:
		return p.Stock > 0 && p.Stock <= low
	case repository.StockFilterOut:
		return p.Stock == 0
	case repository.StockFilterExpiring:
		return expiring[p.ID]
	default:
		return true
	}
}

// GetByID obtiene un producto; ErrProductNotFound si no existe.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	var out *entity.Product
	err := r.session.View(ctx, func(doc *entity.Document) error {
		p := doc.FindProduct(id)
		if p == nil {
			return domain.ErrProductNotFound
		}
		c := copyProduct(*p)
		out = &c
		return nil
	})
	return out, err
}

// Create asigna id y fecha de creación y agrega el producto al final.
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	return r.session.Update(ctx, func(doc *entity.Document) error {
		product.ID = entity.NextID(doc.Products, func(p entity.Product) int { return p.ID })
		product.CreatedAt = stamp(r.now)
		doc.Products = append(doc.Products, copyProduct(*product))
		return nil
	})
}

// Update aplica el patch (solo los campos no nil) y devuelve el producto resultante.
func (r *ProductRepository) Update(ctx context.Context, id int, patch entity.ProductPatch) (*entity.Product, error) {
	var out *entity.Product
	err := r.session.Update(ctx, func(doc *entity.Document) error {
		p := doc.FindProduct(id)
		if p == nil {
			return domain.ErrProductNotFound
		}
		merged := copyProduct(*p)
		patch.Apply(&merged)
		if err := merged.Validate(); err != nil {
			return fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
		}
		*p = merged
		c := copyProduct(merged)
		out = &c
		return nil
	})
	return out, err
}

// AdjustStock suma delta al stock del producto. El stock nunca queda negativo.
func (r *ProductRepository) AdjustStock(ctx context.Context, id int, delta int) (*entity.Product, error) {
	var out *entity.Product
	err := r.session.Update(ctx, func(doc *entity.Document) error {
		p := doc.FindProduct(id)
		if p == nil {
			return domain.ErrProductNotFound
		}
		if p.Stock+delta < 0 {
			return fmt.Errorf("%s: disponible %d, solicitado %d: %w", p.Name, p.Stock, -delta, domain.ErrInsufficientStock)
		}
		p.Stock += delta
		c := copyProduct(*p)
		out = &c
		return nil
	})
	return out, err
}

// Delete elimina el producto; ErrProductNotFound si no existe.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	return r.session.Update(ctx, func(doc *entity.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == id {
				doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
				return nil
			}
		}
		return domain.ErrProductNotFound
	})
}

func copyProduct(p entity.Product) entity.Product {
	if p.ExpiryDate != nil {
		d := *p.ExpiryDate
		p.ExpiryDate = &d
	}
	return p
}

// stamp devuelve la hora del reloj en UTC.
func stamp(now Clock) time.Time {
	return now().UTC()
}
