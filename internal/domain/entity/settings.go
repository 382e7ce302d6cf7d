package entity

import (
	"errors"
)

// Umbrales por defecto cuando la configuración los deja en cero.
const (
	DefaultLowStockThreshold      = 10
	DefaultCriticalStockThreshold = 5
	DefaultExpiryDaysThreshold    = 7
)

// Settings configuración de la tienda persistida en el documento.
type Settings struct {
	CompanyName            string `json:"companyName" yaml:"companyName"`
	Timezone               string `json:"timezone" yaml:"timezone"`
	DateFormat             string `json:"dateFormat" yaml:"dateFormat"`
	Currency               string `json:"currency" yaml:"currency"`
	LowStockThreshold      int    `json:"lowStockThreshold" yaml:"lowStockThreshold"`
	CriticalStockThreshold int    `json:"criticalStockThreshold" yaml:"criticalStockThreshold"`
	ExpiryDaysThreshold    int    `json:"expiryDaysThreshold" yaml:"expiryDaysThreshold"`
	NotificationEmail      string `json:"notificationEmail" yaml:"notificationEmail"`
	SystemMessage          string `json:"systemMessage" yaml:"systemMessage"`
}

// Validate verifica umbrales no negativos y critical <= low.
func (s Settings) Validate() error {
	if s.LowStockThreshold < 0 || s.CriticalStockThreshold < 0 || s.ExpiryDaysThreshold < 0 {
		return errors.New("los umbrales no pueden ser negativos")
	}
	if s.CriticalStockThreshold > s.LowStockThreshold {
		return errors.New("el umbral crítico no puede superar el umbral bajo")
	}
	return nil
}

// LowThreshold devuelve el umbral de stock bajo (con valor por defecto si es cero).
func (s Settings) LowThreshold() int {
	if s.LowStockThreshold == 0 {
		return DefaultLowStockThreshold
	}
	return s.LowStockThreshold
}

// CriticalThreshold devuelve el umbral crítico (con valor por defecto si es cero).
func (s Settings) CriticalThreshold() int {
	if s.CriticalStockThreshold == 0 {
		return DefaultCriticalStockThreshold
	}
	return s.CriticalStockThreshold
}

// ExpiryThreshold devuelve la ventana de días para "próximo a vencer".
func (s Settings) ExpiryThreshold() int {
	if s.ExpiryDaysThreshold == 0 {
		return DefaultExpiryDaysThreshold
	}
	return s.ExpiryDaysThreshold
}

// SettingsPatch actualización parcial de Settings (campos nil no se tocan).
type SettingsPatch struct {
	CompanyName            *string
	Timezone               *string
	DateFormat             *string
	Currency               *string
	LowStockThreshold      *int
	CriticalStockThreshold *int
	ExpiryDaysThreshold    *int
	NotificationEmail      *string
	SystemMessage          *string
}

// Apply aplica el patch sobre s.
func (p SettingsPatch) Apply(s *Settings) {
	setString(&s.CompanyName, p.CompanyName)
	setString(&s.Timezone, p.Timezone)
	setString(&s.DateFormat, p.DateFormat)
	setString(&s.Currency, p.Currency)
	setInt(&s.LowStockThreshold, p.LowStockThreshold)
	setInt(&s.CriticalStockThreshold, p.CriticalStockThreshold)
	setInt(&s.ExpiryDaysThreshold, p.ExpiryDaysThreshold)
	setString(&s.NotificationEmail, p.NotificationEmail)
	setString(&s.SystemMessage, p.SystemMessage)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
