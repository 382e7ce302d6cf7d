package dto

// SettingsResponse configuración de la tienda.
type SettingsResponse struct {
	CompanyName            string `json:"company_name"`
	Timezone               string `json:"timezone"`
	DateFormat             string `json:"date_format"`
	Currency               string `json:"currency"`
	LowStockThreshold      int    `json:"low_stock_threshold"`
	CriticalStockThreshold int    `json:"critical_stock_threshold"`
	ExpiryDaysThreshold    int    `json:"expiry_days_threshold"`
	NotificationEmail      string `json:"notification_email"`
	SystemMessage          string `json:"system_message"`
}

// UpdateSettingsRequest actualización parcial de la configuración (solo admin).
type UpdateSettingsRequest struct {
	CompanyName            *string `json:"company_name"`
	Timezone               *string `json:"timezone"`
	DateFormat             *string `json:"date_format"`
	Currency               *string `json:"currency"`
	LowStockThreshold      *int    `json:"low_stock_threshold"`
	CriticalStockThreshold *int    `json:"critical_stock_threshold"`
	ExpiryDaysThreshold    *int    `json:"expiry_days_threshold"`
	NotificationEmail      *string `json:"notification_email"`
	SystemMessage          *string `json:"system_message"`
}
