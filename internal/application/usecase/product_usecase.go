package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/application/ports"
	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/analytics"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/inventory"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Cada mutación registra su actividad
// en la misma transacción.
type ProductUseCase struct {
	repo     repository.ProductRepository
	settings repository.SettingsRepository
	tx       ports.TxRunner
	events   *ports.Notifier
	now      func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	settings repository.SettingsRepository,
	tx ports.TxRunner,
	events *ports.Notifier,
	now func() time.Time,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, settings: settings, tx: tx, events: events, now: now}
}

// List lista productos aplicando búsqueda, categoría y filtro de stock.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductFilterRequest) (*dto.ProductListResponse, error) {
	switch in.Stock {
	case "", repository.StockFilterIn, repository.StockFilterLow, repository.StockFilterOut, repository.StockFilterExpiring:
	default:
		return nil, fmt.Errorf("filtro de stock %q: %w", in.Stock, domain.ErrInvalidInput)
	}
	list, err := uc.repo.List(ctx, repository.ProductFilter{Search: in.Search, Category: in.Category, Stock: in.Stock})
	if err != nil {
		return nil, err
	}
	assess, err := uc.assessor(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, assess(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// GetByID obtiene un producto con su estado calculado.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	assess, err := uc.assessor(ctx)
	if err != nil {
		return nil, err
	}
	out := assess(*p)
	return &out, nil
}

// NearExpiry productos que vencen entre hoy y hoy+days. days <= 0 usa el umbral configurado.
func (uc *ProductUseCase) NearExpiry(ctx context.Context, days int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	today := entity.DateOf(uc.now())
	snapshot := &entity.Document{Settings: *settings, Products: list}
	th := inventory.ThresholdsFrom(*settings)
	out := []dto.ProductResponse{}
	for _, p := range analytics.ProductsNearExpiry(snapshot, today, days) {
		out = append(out, dto.ToProductResponse(p, inventory.Classify(p, th, today)))
	}
	return out, nil
}

// Create valida y crea un producto registrando "Product Added".
func (uc *ProductUseCase) Create(ctx context.Context, actor string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	expiry, err := parseOptionalDate(in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:        in.Name,
		SKU:         in.SKU,
		Category:    in.Category,
		Stock:       in.Stock,
		Unit:        in.Unit,
		Price:       in.Price,
		ExpiryDate:  expiry,
		Description: in.Description,
	}
	err = uc.tx.Run(ctx, func(tx repository.Tx) error {
		if err := tx.Products.Create(ctx, product); err != nil {
			return err
		}
		return logActivity(ctx, tx.Activities, entity.ActivityProductAdded, actor,
			fmt.Sprintf("Added new product %q", product.Name))
	})
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, actor, *product)
	return uc.GetByID(ctx, product.ID)
}

// Update aplica solo los campos enviados y registra "Product Updated".
func (uc *ProductUseCase) Update(ctx context.Context, actor string, id int, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	patch := entity.ProductPatch{
		Name:        in.Name,
		SKU:         in.SKU,
		Category:    in.Category,
		Stock:       in.Stock,
		Unit:        in.Unit,
		Price:       in.Price,
		Description: in.Description,
	}
	if in.ExpiryDate != nil {
		if *in.ExpiryDate == "" {
			patch.ClearExpiry = true
		} else {
			d, err := entity.ParseDate(*in.ExpiryDate)
			if err != nil {
				return nil, fmt.Errorf("expiry_date: %v: %w", err, domain.ErrInvalidInput)
			}
			patch.ExpiryDate = &d
		}
	}
	var updated *entity.Product
	err := uc.tx.Run(ctx, func(tx repository.Tx) error {
		p, err := tx.Products.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		updated = p
		return logActivity(ctx, tx.Activities, entity.ActivityProductUpdated, actor,
			fmt.Sprintf("Updated product %q", p.Name))
	})
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, actor, *updated)
	return uc.GetByID(ctx, id)
}

// Delete elimina un producto y registra "Product Deleted".
func (uc *ProductUseCase) Delete(ctx context.Context, actor string, id int) error {
	var deleted *entity.Product
	err := uc.tx.Run(ctx, func(tx repository.Tx) error {
		p, err := tx.Products.GetByID(ctx, id)
		if err != nil {
			return err
		}
		deleted = p
		if err := tx.Products.Delete(ctx, id); err != nil {
			return err
		}
		return logActivity(ctx, tx.Activities, entity.ActivityProductDeleted, actor,
			fmt.Sprintf("Deleted product %q", p.Name))
	})
	if err != nil {
		return err
	}
	uc.publish(ctx, actor, *deleted)
	return nil
}

// assessor devuelve una función que proyecta productos con los umbrales vigentes.
func (uc *ProductUseCase) assessor(ctx context.Context) (func(entity.Product) dto.ProductResponse, error) {
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	th := inventory.ThresholdsFrom(*settings)
	today := entity.DateOf(uc.now())
	return func(p entity.Product) dto.ProductResponse {
		return dto.ToProductResponse(p, inventory.Classify(p, th, today))
	}, nil
}

func (uc *ProductUseCase) publish(ctx context.Context, actor string, p entity.Product) {
	uc.events.PublishAfterCommit(ctx, ports.NewEvent(ports.EventProductUpdated, actor, p, uc.now()))
}
