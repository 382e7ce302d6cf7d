package inventory

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount formatea un monto con el símbolo de la moneda ISO 4217 configurada
// (p. ej. "₹ 240.00"). Un código desconocido se antepone tal cual.
func FormatAmount(code string, amount decimal.Decimal) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		if code == "" {
			return amount.StringFixed(2)
		}
		return code + " " + amount.StringFixed(2)
	}
	return printer.Sprint(currency.Symbol(unit.Amount(amount.InexactFloat64())))
}
