package dto

import "github.com/shopspring/decimal"

// ChartSeriesDTO etiquetas y valores de un gráfico.
type ChartSeriesDTO struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}

// ChartsDTO respuesta de GET /api/analytics/charts.
type ChartsDTO struct {
	Year                int            `json:"year"`
	SalesByMonth        ChartSeriesDTO `json:"sales_by_month"`
	PurchasesByMonth    ChartSeriesDTO `json:"purchases_by_month"`
	InventoryByCategory ChartSeriesDTO `json:"inventory_by_category"`
}
