package inventory

import (
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Escalones de descuento por cercanía al vencimiento (servicio de dominio).
// Se evalúan en orden ascendente de días restantes; gana el primero que aplica.
//
//	días <= 2 → 50%
//	días <= 4 → 30%
//	días <= 7 → 20%
//	resto     → 0%
var discountTiers = []struct {
	maxDays int
	rate    decimal.Decimal
}{
	{2, decimal.RequireFromString("0.5")},
	{4, decimal.RequireFromString("0.3")},
	{7, decimal.RequireFromString("0.2")},
}

// DiscountWindowDays días antes del vencimiento a partir de los cuales hay descuento.
const DiscountWindowDays = 7

// ExpiringSoonDays días restantes que marcan el producto como "Expiring Soon".
const ExpiringSoonDays = 2

// DaysRemaining días de calendario entre today y expiry (negativo si ya venció).
func DaysRemaining(expiry, today entity.Date) int {
	return today.DaysUntil(expiry)
}

// DiscountForDays devuelve la tasa de descuento (0.5, 0.3, 0.2 o 0) para los días restantes.
func DiscountForDays(days int) decimal.Decimal {
	for _, t := range discountTiers {
		if days <= t.maxDays {
			return t.rate
		}
	}
	return decimal.Zero
}

// CalculateDiscount tasa de descuento para un producto que vence en expiry.
func CalculateDiscount(expiry, today entity.Date) decimal.Decimal {
	return DiscountForDays(DaysRemaining(expiry, today))
}

// DiscountedPrice precio * (1 - descuento), redondeado a 2 decimales.
func DiscountedPrice(price, discount decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(1).Sub(discount)).Round(2)
}
