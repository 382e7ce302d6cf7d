package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Todas las cifras se calculan sobre una misma instantánea del documento.
type DashboardSummaryDTO struct {
	Date      string `json:"date"` // YYYY-MM-DD usado como "hoy"
	DateLabel string `json:"date_label"`
	Currency  string `json:"currency"`

	// Ventas
	TodaySales        decimal.Decimal `json:"today_sales"`
	MonthlySales      decimal.Decimal `json:"monthly_sales"`
	MonthlySalesText  string          `json:"monthly_sales_text"`
	SalesGrowth       decimal.Decimal `json:"sales_growth"` // % mes contra mes
	SalesTrend        decimal.Decimal `json:"sales_trend"`  // % hoy contra ayer
	AverageDailySales decimal.Decimal `json:"average_daily_sales"`
	TopProduct        TopProductDTO   `json:"top_product"`

	// Compras
	TodayPurchases   decimal.Decimal `json:"today_purchases"`
	MonthlyPurchases decimal.Decimal `json:"monthly_purchases"`
	PurchaseGrowth   decimal.Decimal `json:"purchase_growth"`
	NewOrdersToday   int             `json:"new_orders_today"`
	PendingOrders    int             `json:"pending_orders"`

	// Inventario
	TotalProducts     int                `json:"total_products"`
	InventoryValue    decimal.Decimal    `json:"inventory_value"`
	LowStockCount     int                `json:"low_stock_count"`
	NearExpiry        []ProductResponse  `json:"near_expiry"`
	RecentActivities  []ActivityResponse `json:"recent_activities"`
	TodayPurchaseList []OrderResponse    `json:"today_purchase_orders"`
}

// TopProductDTO producto más vendido (por unidades).
type TopProductDTO struct {
	ProductID int    `json:"product_id,omitempty"`
	Product   string `json:"product"`
	Sales     int    `json:"sales"`
}
