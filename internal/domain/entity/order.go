package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado de una orden de compra.
type OrderStatus string

// Ciclo de vida: Pending → Approved → Shipped → Received; Cancelled desde cualquier estado no terminal.
const (
	OrderPending   OrderStatus = "Pending"
	OrderApproved  OrderStatus = "Approved"
	OrderShipped   OrderStatus = "Shipped"
	OrderReceived  OrderStatus = "Received"
	OrderCancelled OrderStatus = "Cancelled"
)

// poNumberBase base del número de orden legible ("PO-" + base + id).
const poNumberBase = 10000

// UnknownSupplierName nombre mostrado cuando el proveedor de la orden ya no existe.
const UnknownSupplierName = "Unknown Supplier"

var orderRank = map[OrderStatus]int{
	OrderPending:  0,
	OrderApproved: 1,
	OrderShipped:  2,
	OrderReceived: 3,
}

// Valid indica si s es un estado conocido.
func (s OrderStatus) Valid() bool {
	_, ok := orderRank[s]
	return ok || s == OrderCancelled
}

// Terminal indica si no admite más transiciones.
func (s OrderStatus) Terminal() bool {
	return s == OrderReceived || s == OrderCancelled
}

// CanTransition indica si se puede pasar de s a next: solo hacia adelante en el ciclo
// o a Cancelled desde un estado no terminal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	if next == OrderCancelled {
		return true
	}
	return orderRank[next] > orderRank[s]
}

// PONumberFor deriva el número de orden legible a partir del ID.
func PONumberFor(id int) string {
	return fmt.Sprintf("PO-%d", poNumberBase+id)
}

// OrderItem línea de una orden de compra.
type OrderItem struct {
	ProductID int             `json:"productId" yaml:"productId"`
	Quantity  int             `json:"quantity" yaml:"quantity"`
	Price     decimal.Decimal `json:"price" yaml:"price"`
}

// Subtotal cantidad * precio unitario.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order orden de compra a un proveedor. El total no se persiste: se calcula con Total().
type Order struct {
	ID         int         `json:"id" yaml:"id"`
	PONumber   string      `json:"poNumber" yaml:"poNumber"`
	SupplierID int         `json:"supplierId" yaml:"supplierId"`
	Date       Date        `json:"date" yaml:"date"`
	Status     OrderStatus `json:"status" yaml:"status"`
	Items      []OrderItem `json:"items" yaml:"items"`
	Notes      string      `json:"notes" yaml:"notes"`
	CreatedAt  time.Time   `json:"createdAt" yaml:"createdAt"`
}

// Total suma de los subtotales de las líneas.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// ValidateItems verifica que haya al menos una línea con cantidad > 0 y precio >= 0.
func ValidateItems(items []OrderItem) error {
	if len(items) == 0 {
		return errors.New("la orden debe tener al menos una línea")
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return errors.New("la cantidad de cada línea debe ser mayor que cero")
		}
		if it.Price.IsNegative() {
			return errors.New("el precio de cada línea no puede ser negativo")
		}
	}
	return nil
}

// OrderView proyección de lectura: orden + nombre del proveedor + total. Nunca se persiste.
type OrderView struct {
	Order
	SupplierName string          `json:"supplierName"`
	Total        decimal.Decimal `json:"total"`
}

// OrderPatch actualización parcial de Order. El estado se cambia por el caso de uso
// (valida transiciones y efectos de recepción).
type OrderPatch struct {
	SupplierID *int
	Date       *Date
	Status     *OrderStatus
	Items      *[]OrderItem
	Notes      *string
}

// Apply aplica el patch sobre o.
func (p OrderPatch) Apply(o *Order) {
	setInt(&o.SupplierID, p.SupplierID)
	if p.Date != nil {
		o.Date = *p.Date
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Items != nil {
		o.Items = append([]OrderItem(nil), (*p.Items)...)
	}
	setString(&o.Notes, p.Notes)
}
