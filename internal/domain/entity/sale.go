package entity

import "github.com/shopspring/decimal"

// DefaultCustomer cliente usado cuando la venta no indica uno.
const DefaultCustomer = "Retail Customer"

// Sale venta registrada. Amount = precio del producto * cantidad al momento de la venta.
type Sale struct {
	ID        int             `json:"id" yaml:"id"`
	Date      Date            `json:"date" yaml:"date"`
	ProductID int             `json:"productId" yaml:"productId"`
	Quantity  int             `json:"quantity" yaml:"quantity"`
	Amount    decimal.Decimal `json:"amount" yaml:"amount"`
	Customer  string          `json:"customer" yaml:"customer"`
}
