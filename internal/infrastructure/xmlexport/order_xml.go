// Package xmlexport serializa órdenes de compra a XML para intercambio con proveedores.
package xmlexport

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/jhoicas/freshstock-api/internal/application/export"
)

// Namespace del documento de orden de compra.
const NsPurchaseOrder = "urn:freshstock:purchase-order:1"

var _ export.OrderXMLBuilder = (*OrderXMLBuilder)(nil)

// OrderXMLBuilder construye el XML de la orden:
//
//	<PurchaseOrder number="PO-10002" date="2026-03-10" status="Pending" currency="INR">
//	  <Buyer name="FreshStock Grocery" email="..."/>
//	  <Supplier id="2"><Name>…</Name><Contact>…</Contact>…</Supplier>
//	  <Items><Item productId="3" sku="…" unit="kg"><Name>…</Name><Quantity>8</Quantity>…</Item></Items>
//	  <Total>2720.00</Total>
//	  <Notes>…</Notes>
//	</PurchaseOrder>
type OrderXMLBuilder struct {
	indent int
}

// NewOrderXMLBuilder crea el builder con indentación de 2 espacios.
func NewOrderXMLBuilder() *OrderXMLBuilder {
	return &OrderXMLBuilder{indent: 2}
}

// BuildOrderXML serializa doc.
func (b *OrderXMLBuilder) BuildOrderXML(_ context.Context, doc export.OrderDocument) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("PurchaseOrder")
	root.CreateAttr("xmlns", NsPurchaseOrder)
	root.CreateAttr("number", doc.Order.PONumber)
	root.CreateAttr("date", doc.Order.Date.String())
	root.CreateAttr("status", string(doc.Order.Status))
	if doc.Company.Currency != "" {
		root.CreateAttr("currency", doc.Company.Currency)
	}

	buyer := root.CreateElement("Buyer")
	buyer.CreateAttr("name", doc.Company.CompanyName)
	if doc.Company.NotificationEmail != "" {
		buyer.CreateAttr("email", doc.Company.NotificationEmail)
	}

	supplier := root.CreateElement("Supplier")
	supplier.CreateAttr("id", strconv.Itoa(doc.Order.SupplierID))
	supplier.CreateElement("Name").SetText(doc.SupplierName())
	if s := doc.Supplier; s != nil {
		optional(supplier, "Contact", s.Contact)
		optional(supplier, "Phone", s.Phone)
		optional(supplier, "Email", s.Email)
		optional(supplier, "Address", s.Address)
	}

	items := root.CreateElement("Items")
	for _, l := range doc.Lines {
		item := items.CreateElement("Item")
		item.CreateAttr("productId", strconv.Itoa(l.ProductID))
		if l.SKU != "" {
			item.CreateAttr("sku", l.SKU)
		}
		if l.Unit != "" {
			item.CreateAttr("unit", l.Unit)
		}
		item.CreateElement("Name").SetText(l.ProductName)
		item.CreateElement("Quantity").SetText(strconv.Itoa(l.Quantity))
		item.CreateElement("UnitPrice").SetText(l.Price.StringFixed(2))
		item.CreateElement("Subtotal").SetText(l.Subtotal.StringFixed(2))
	}

	root.CreateElement("Total").SetText(doc.Order.Total.StringFixed(2))
	optional(root, "Notes", doc.Order.Notes)

	x.Indent(b.indent)
	var out bytes.Buffer
	if _, err := x.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xml: serializar orden %s: %w", doc.Order.PONumber, err)
	}
	return out.Bytes(), nil
}

func optional(parent *etree.Element, tag, value string) {
	if value != "" {
		parent.CreateElement(tag).SetText(value)
	}
}
