package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/analytics"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// Rango de años aceptado para los gráficos.
const (
	minChartYear = 2000
	maxChartYear = 2100
)

// AnalyticsUseCase arma las series de los gráficos del panel a partir de una única
// instantánea del documento:
//   - ventas por mes del año pedido.
//   - compras recibidas por mes.
//   - valor de inventario por categoría.
type AnalyticsUseCase struct {
	store repository.DocumentStore
	now   func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(store repository.DocumentStore, now func() time.Time) *AnalyticsUseCase {
	return &AnalyticsUseCase{store: store, now: now}
}

// Charts devuelve las series del año indicado; year == 0 usa el año en curso.
func (uc *AnalyticsUseCase) Charts(ctx context.Context, year int) (*dto.ChartsDTO, error) {
	if year == 0 {
		year = uc.now().Year()
	}
	if year < minChartYear || year > maxChartYear {
		return nil, fmt.Errorf("año %d fuera de rango: %w", year, domain.ErrInvalidInput)
	}
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ChartsDTO{
		Year:                year,
		SalesByMonth:        toSeries(analytics.SalesByMonth(doc, year)),
		PurchasesByMonth:    toSeries(analytics.PurchasesByMonth(doc, year)),
		InventoryByCategory: toSeries(analytics.InventoryByCategory(doc)),
	}, nil
}

func toSeries(s analytics.Series) dto.ChartSeriesDTO {
	return dto.ChartSeriesDTO{Labels: s.Labels, Data: s.Data}
}
