// Package analytics contiene los cálculos derivados del panel: agregados por fecha,
// crecimiento, ranking de productos y valoración del inventario.
//
// Todas las funciones son puras: reciben una instantánea del documento y la fecha
// de "hoy", y no modifican nada.
package analytics

import (
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// NoSalesLabel producto reportado por TopProduct cuando no hay ventas.
const NoSalesLabel = "No sales data"

// UnknownProductLabel producto reportado cuando el más vendido ya no existe en el catálogo.
const UnknownProductLabel = "Unknown Product"

var hundred = decimal.NewFromInt(100)

// TopProduct producto con más unidades vendidas.
type TopProduct struct {
	ProductID int    `json:"productId,omitempty"`
	Product   string `json:"product"`
	Sales     int    `json:"sales"`
}

// ── Ventas ───────────────────────────────────────────────────────────────────

// MonthlySales suma de ventas del mes calendario de today.
func MonthlySales(doc *entity.Document, today entity.Date) decimal.Decimal {
	return salesWhere(doc, func(s entity.Sale) bool { return s.Date.SameMonth(today) })
}

// TodaySales suma de ventas con fecha exactamente igual a today.
func TodaySales(doc *entity.Document, today entity.Date) decimal.Decimal {
	return salesWhere(doc, func(s entity.Sale) bool { return s.Date.Equal(today) })
}

// SalesGrowth variación porcentual del mes actual frente al anterior.
func SalesGrowth(doc *entity.Document, today entity.Date) decimal.Decimal {
	prev := previousMonth(today)
	current := MonthlySales(doc, today)
	previous := salesWhere(doc, func(s entity.Sale) bool { return s.Date.SameMonth(prev) })
	return Growth(current, previous)
}

// SalesTrend variación porcentual de hoy frente a ayer.
func SalesTrend(doc *entity.Document, today entity.Date) decimal.Decimal {
	yesterday := today.AddDays(-1)
	current := TodaySales(doc, today)
	previous := salesWhere(doc, func(s entity.Sale) bool { return s.Date.Equal(yesterday) })
	return Growth(current, previous)
}

// AverageDailySales total vendido dividido entre el número de fechas distintas con ventas
// (no días de calendario). Cero si no hay ventas.
func AverageDailySales(doc *entity.Document) decimal.Decimal {
	if len(doc.Sales) == 0 {
		return decimal.Zero
	}
	dates := make(map[string]struct{})
	total := decimal.Zero
	for _, s := range doc.Sales {
		dates[s.Date.String()] = struct{}{}
		total = total.Add(s.Amount)
	}
	return total.Div(decimal.NewFromInt(int64(len(dates)))).Round(2)
}

// TopProductBySales suma unidades vendidas por producto y devuelve el máximo estricto.
// Los empates se resuelven a favor del producto que aparece primero en las ventas.
func TopProductBySales(doc *entity.Document) TopProduct {
	totals := make(map[int]int)
	var order []int
	for _, s := range doc.Sales {
		if _, seen := totals[s.ProductID]; !seen {
			order = append(order, s.ProductID)
		}
		totals[s.ProductID] += s.Quantity
	}

	topID, maxSales := 0, 0
	for _, id := range order {
		if totals[id] > maxSales {
			topID, maxSales = id, totals[id]
		}
	}
	if maxSales == 0 {
		return TopProduct{Product: NoSalesLabel, Sales: 0}
	}
	name := UnknownProductLabel
	if p := doc.FindProduct(topID); p != nil {
		name = p.Name
	}
	return TopProduct{ProductID: topID, Product: name, Sales: maxSales}
}

// ── Compras ──────────────────────────────────────────────────────────────────

// MonthlyPurchases total de órdenes recibidas con fecha en el mes de today.
func MonthlyPurchases(doc *entity.Document, today entity.Date) decimal.Decimal {
	return receivedWhere(doc, func(o entity.Order) bool { return o.Date.SameMonth(today) })
}

// TodayPurchases total de órdenes recibidas con fecha igual a today.
func TodayPurchases(doc *entity.Document, today entity.Date) decimal.Decimal {
	return receivedWhere(doc, func(o entity.Order) bool { return o.Date.Equal(today) })
}

// PurchaseGrowth variación porcentual de compras recibidas del mes frente al mes anterior.
func PurchaseGrowth(doc *entity.Document, today entity.Date) decimal.Decimal {
	prev := previousMonth(today)
	current := MonthlyPurchases(doc, today)
	previous := receivedWhere(doc, func(o entity.Order) bool { return o.Date.SameMonth(prev) })
	return Growth(current, previous)
}

// TodayPurchaseOrders órdenes (cualquier estado) con fecha de hoy.
func TodayPurchaseOrders(doc *entity.Document, today entity.Date) []entity.Order {
	var out []entity.Order
	for _, o := range doc.Orders {
		if o.Date.Equal(today) {
			out = append(out, o)
		}
	}
	return out
}

// NewOrdersToday cantidad de órdenes con fecha de hoy.
func NewOrdersToday(doc *entity.Document, today entity.Date) int {
	return len(TodayPurchaseOrders(doc, today))
}

// PendingOrders cantidad de órdenes en estado Pending.
func PendingOrders(doc *entity.Document) int {
	n := 0
	for _, o := range doc.Orders {
		if o.Status == entity.OrderPending {
			n++
		}
	}
	return n
}

// ── Inventario ───────────────────────────────────────────────────────────────

// InventoryValue suma de stock * precio de todos los productos.
func InventoryValue(doc *entity.Document) decimal.Decimal {
	total := decimal.Zero
	for _, p := range doc.Products {
		total = total.Add(p.Value())
	}
	return total
}

// LowStockCount productos con stock <= umbral bajo. Incluye críticos y agotados.
func LowStockCount(doc *entity.Document) int {
	low := doc.Settings.LowThreshold()
	n := 0
	for _, p := range doc.Products {
		if p.Stock <= low {
			n++
		}
	}
	return n
}

// ProductsNearExpiry productos que vencen entre hoy y hoy+thresholdDays (ambos inclusive).
// Los vencidos no se incluyen. thresholdDays <= 0 usa el umbral de la configuración.
func ProductsNearExpiry(doc *entity.Document, today entity.Date, thresholdDays int) []entity.Product {
	if thresholdDays <= 0 {
		thresholdDays = doc.Settings.ExpiryThreshold()
	}
	limit := today.AddDays(thresholdDays)
	out := []entity.Product{}
	for _, p := range doc.Products {
		if p.ExpiryDate == nil || p.ExpiryDate.IsZero() {
			continue
		}
		if !p.ExpiryDate.Before(today) && !p.ExpiryDate.After(limit) {
			out = append(out, p)
		}
	}
	return out
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// Growth (actual - anterior) / anterior * 100, redondeado a 2 decimales.
// Si anterior es cero devuelve 100 cuando actual > 0 y 0 en otro caso.
func Growth(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

func previousMonth(today entity.Date) entity.Date {
	return entity.NewDate(today.Year(), today.Month(), 1).AddDays(-1)
}

func salesWhere(doc *entity.Document, keep func(entity.Sale) bool) decimal.Decimal {
	total := decimal.Zero
	for _, s := range doc.Sales {
		if keep(s) {
			total = total.Add(s.Amount)
		}
	}
	return total
}

func receivedWhere(doc *entity.Document, keep func(entity.Order) bool) decimal.Decimal {
	total := decimal.Zero
	for _, o := range doc.Orders {
		if o.Status == entity.OrderReceived && keep(o) {
			total = total.Add(o.Total())
		}
	}
	return total
}

// TotalProducts cantidad de productos en el catálogo.
func TotalProducts(doc *entity.Document) int {
	return len(doc.Products)
}
