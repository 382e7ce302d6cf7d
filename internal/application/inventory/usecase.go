package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/application/ports"
	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/analytics"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// SalesUseCase registra ventas descontando stock de forma transaccional:
// la venta, el nuevo stock y la actividad se escriben juntos o no se escribe nada.
type SalesUseCase struct {
	txRunner ports.TxRunner
	sales    repository.SaleRepository
	products repository.ProductRepository
	events   *ports.Notifier
	now      func() time.Time
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(
	txRunner ports.TxRunner,
	sales repository.SaleRepository,
	products repository.ProductRepository,
	events *ports.Notifier,
	now func() time.Time,
) *SalesUseCase {
	return &SalesUseCase{
		txRunner: txRunner,
		sales:    sales,
		products: products,
		events:   events,
		now:      now,
	}
}

// RecordSaleInput entrada de RecordSale. User es el nombre visible de quien registra.
type RecordSaleInput struct {
	ProductID int
	Quantity  int
	Customer  string
	User      string
}

// RecordSale valida cantidad y stock, descuenta el stock, crea la venta con
// amount = precio * cantidad y registra "Sale Recorded".
func (uc *SalesUseCase) RecordSale(ctx context.Context, input RecordSaleInput) (*dto.RecordSaleResponse, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("cantidad %d: %w", input.Quantity, domain.ErrInvalidInput)
	}
	customer := input.Customer
	if customer == "" {
		customer = entity.DefaultCustomer
	}

	var (
		sale    entity.Sale
		product *entity.Product
	)
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		p, err := tx.Products.GetByID(ctx, input.ProductID)
		if err != nil {
			return err
		}
		settings, err := tx.Settings.Get(ctx)
		if err != nil {
			return err
		}
		// AdjustStock rechaza con ErrInsufficientStock si el stock quedaría negativo.
		product, err = tx.Products.AdjustStock(ctx, p.ID, -input.Quantity)
		if err != nil {
			return err
		}
		sale = entity.Sale{
			ProductID: p.ID,
			Quantity:  input.Quantity,
			Amount:    p.Price.Mul(decimal.NewFromInt(int64(input.Quantity))),
			Customer:  customer,
			Date:      entity.DateOf(uc.now()),
		}
		if err := tx.Sales.Create(ctx, &sale); err != nil {
			return err
		}
		return tx.Activities.Append(ctx, &entity.Activity{
			Activity: entity.ActivitySaleRecorded,
			User:     input.User,
			Details: fmt.Sprintf("Sold %d %s of %s to %s for %s",
				input.Quantity, p.Unit, p.Name, customer, FormatAmount(settings.Currency, sale.Amount)),
		})
	})
	if err != nil {
		return nil, err
	}

	out := &dto.RecordSaleResponse{
		Sale:           dto.ToSaleResponse(sale, product.Name),
		RemainingStock: product.Stock,
	}
	now := uc.now()
	uc.events.PublishAfterCommit(ctx, ports.NewEvent(ports.EventSaleRecorded, input.User, out.Sale, now))
	uc.events.PublishAfterCommit(ctx, ports.NewEvent(ports.EventProductUpdated, input.User, *product, now))
	return out, nil
}

// List devuelve las ventas con el nombre del producto ("Unknown Product" si ya no existe).
func (uc *SalesUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		name, ok := names[s.ProductID]
		if !ok {
			name = analytics.UnknownProductLabel
		}
		out = append(out, dto.ToSaleResponse(s, name))
	}
	return out, nil
}
