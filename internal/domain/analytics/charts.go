package analytics

import (
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// MonthLabels etiquetas de los 12 buckets mensuales.
var MonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Series etiquetas y valores listos para un gráfico.
type Series struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}

// SalesByMonth suma de ventas por mes (Jan–Dec) del año indicado.
func SalesByMonth(doc *entity.Document, year int) Series {
	data := zeroBuckets()
	for _, s := range doc.Sales {
		if s.Date.Year() == year {
			i := int(s.Date.Month()) - 1
			data[i] = data[i].Add(s.Amount)
		}
	}
	return Series{Labels: MonthLabels, Data: data}
}

// PurchasesByMonth suma de órdenes recibidas por mes (Jan–Dec) del año indicado.
func PurchasesByMonth(doc *entity.Document, year int) Series {
	data := zeroBuckets()
	for _, o := range doc.Orders {
		if o.Status == entity.OrderReceived && o.Date.Year() == year {
			i := int(o.Date.Month()) - 1
			data[i] = data[i].Add(o.Total())
		}
	}
	return Series{Labels: MonthLabels, Data: data}
}

// InventoryByCategory valor de inventario por categoría, en el orden en que aparecen.
func InventoryByCategory(doc *entity.Document) Series {
	out := Series{Labels: []string{}, Data: []decimal.Decimal{}}
	index := make(map[string]int)
	for _, p := range doc.Products {
		i, ok := index[p.Category]
		if !ok {
			i = len(out.Labels)
			index[p.Category] = i
			out.Labels = append(out.Labels, p.Category)
			out.Data = append(out.Data, decimal.Zero)
		}
		out.Data[i] = out.Data[i].Add(p.Value())
	}
	return out
}

func zeroBuckets() []decimal.Decimal {
	data := make([]decimal.Decimal, len(MonthLabels))
	for i := range data {
		data[i] = decimal.Zero
	}
	return data
}
