// Package analytics contiene los casos de uso del panel principal: KPIs de ventas,
// compras e inventario calculados sobre una misma instantánea del documento.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/application/inventory"
	kpi "github.com/jhoicas/freshstock-api/internal/domain/analytics"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	domaininv "github.com/jhoicas/freshstock-api/internal/domain/inventory"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// RecentActivities número de actividades incluidas en el resumen.
const RecentActivities = 10

// DashboardUseCase genera el resumen del día y del mes en curso.
//
// Fuente de datos: DocumentStore.Load (una sola lectura); el cálculo lo hacen las
// funciones puras de domain/analytics.
type DashboardUseCase struct {
	store repository.DocumentStore
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.DocumentStore, now func() time.Time) *DashboardUseCase {
	return &DashboardUseCase{store: store, now: now}
}

// GetSummary construye el DashboardSummaryDTO con "hoy" = fecha del reloj inyectado.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	doc, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	now := uc.now()
	today := entity.DateOf(now)

	// ── Productos próximos a vencer ────────────────────────────────────────────
	th := domaininv.ThresholdsFrom(doc.Settings)
	nearExpiry := []dto.ProductResponse{}
	for _, p := range kpi.ProductsNearExpiry(doc, today, 0) {
		nearExpiry = append(nearExpiry, dto.ToProductResponse(p, domaininv.Classify(p, th, today)))
	}

	// ── Órdenes de hoy ─────────────────────────────────────────────────────────
	names := make(map[int]string, len(doc.Products))
	for _, p := range doc.Products {
		names[p.ID] = p.Name
	}
	todayOrders := []dto.OrderResponse{}
	for _, o := range kpi.TodayPurchaseOrders(doc, today) {
		todayOrders = append(todayOrders, dto.ToOrderResponse(doc.ViewOrder(o), names))
	}

	activities := doc.Activities
	if len(activities) > RecentActivities {
		activities = activities[:RecentActivities]
	}

	top := kpi.TopProductBySales(doc)

	// ── Construir DTO ──────────────────────────────────────────────────────────
	return &dto.DashboardSummaryDTO{
		Date:              today.String(),
		DateLabel:         monthLabel(now),
		Currency:          doc.Settings.Currency,
		TodaySales:        kpi.TodaySales(doc, today),
		MonthlySales:      kpi.MonthlySales(doc, today),
		MonthlySalesText:  inventory.FormatAmount(doc.Settings.Currency, kpi.MonthlySales(doc, today)),
		SalesGrowth:       kpi.SalesGrowth(doc, today),
		SalesTrend:        kpi.SalesTrend(doc, today),
		AverageDailySales: kpi.AverageDailySales(doc),
		TopProduct:        dto.TopProductDTO{ProductID: top.ProductID, Product: top.Product, Sales: top.Sales},
		TodayPurchases:    kpi.TodayPurchases(doc, today),
		MonthlyPurchases:  kpi.MonthlyPurchases(doc, today),
		PurchaseGrowth:    kpi.PurchaseGrowth(doc, today),
		NewOrdersToday:    kpi.NewOrdersToday(doc, today),
		PendingOrders:     kpi.PendingOrders(doc),
		TotalProducts:     kpi.TotalProducts(doc),
		InventoryValue:    kpi.InventoryValue(doc),
		LowStockCount:     kpi.LowStockCount(doc),
		NearExpiry:        nearExpiry,
		RecentActivities:  dto.ToActivityList(activities),
		TodayPurchaseList: todayOrders,
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "March 2026".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}
