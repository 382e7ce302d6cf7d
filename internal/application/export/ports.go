package export

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// OrderLine línea de la orden lista para imprimir (con datos del producto resueltos).
type OrderLine struct {
	ProductID   int
	ProductName string
	SKU         string
	Unit        string
	Quantity    int
	Price       decimal.Decimal
	Subtotal    decimal.Decimal
}

// OrderDocument todo lo necesario para representar una orden de compra.
// Supplier es nil si el proveedor ya no existe.
type OrderDocument struct {
	Company  entity.Settings
	Order    entity.OrderView
	Supplier *entity.Supplier
	Lines    []OrderLine
}

// OrderPDFGenerator genera la representación PDF de una orden de compra.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, doc OrderDocument) ([]byte, error)
}

// OrderXMLBuilder genera la representación XML de una orden de compra.
type OrderXMLBuilder interface {
	BuildOrderXML(ctx context.Context, doc OrderDocument) ([]byte, error)
}
