package inventory

import (
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockStatus estado de visualización de un producto (no se persiste).
// La capa de presentación decide cómo pintar cada valor.
type StockStatus string

const (
	StatusExpired      StockStatus = "Expired"
	StatusExpiringSoon StockStatus = "Expiring Soon"
	StatusOutOfStock   StockStatus = "Out of Stock"
	StatusCritical     StockStatus = "Critical"
	StatusLow          StockStatus = "Low"
	StatusInStock      StockStatus = "In Stock"
)

// Thresholds umbrales de stock usados para clasificar.
type Thresholds struct {
	Low      int
	Critical int
}

// ThresholdsFrom toma los umbrales efectivos de la configuración.
func ThresholdsFrom(s entity.Settings) Thresholds {
	return Thresholds{Low: s.LowThreshold(), Critical: s.CriticalThreshold()}
}

// Assessment resultado de evaluar un producto: estado, descuento y precio a mostrar.
// DaysRemaining es nil si el producto no tiene fecha de vencimiento.
type Assessment struct {
	Status        StockStatus
	Discount      decimal.Decimal
	DisplayPrice  decimal.Decimal
	DaysRemaining *int
}

// Classify combina vencimiento y stock con la precedencia
// Expired > Expiring Soon > Out of Stock > Critical > Low > In Stock.
// El descuento es independiente del estado: aplica a productos no vencidos con <= 7 días.
func Classify(p entity.Product, th Thresholds, today entity.Date) Assessment {
	a := Assessment{Discount: decimal.Zero, DisplayPrice: p.Price}

	if p.ExpiryDate != nil && !p.ExpiryDate.IsZero() {
		days := DaysRemaining(*p.ExpiryDate, today)
		a.DaysRemaining = &days
		switch {
		case days < 0:
			a.Status = StatusExpired
		default:
			if days <= DiscountWindowDays {
				a.Discount = DiscountForDays(days)
				if a.Discount.IsPositive() {
					a.DisplayPrice = DiscountedPrice(p.Price, a.Discount)
				}
			}
			if days <= ExpiringSoonDays {
				a.Status = StatusExpiringSoon
			}
		}
	}
	if a.Status != "" {
		return a
	}

	switch {
	case p.Stock == 0:
		a.Status = StatusOutOfStock
	case p.Stock <= th.Critical:
		a.Status = StatusCritical
	case p.Stock <= th.Low:
		a.Status = StatusLow
	default:
		a.Status = StatusInStock
	}
	return a
}
