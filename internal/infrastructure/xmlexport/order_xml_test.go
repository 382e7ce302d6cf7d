package xmlexport

import (
	"context"
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freshstock-api/internal/application/export"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

func sampleDoc(supplier *entity.Supplier) export.OrderDocument {
	order := entity.Order{
		ID: 1, PONumber: "PO-10001", SupplierID: 1, Date: entity.NewDate(2026, 3, 10), Status: entity.OrderReceived,
		Items: []entity.OrderItem{
			{ProductID: 1, Quantity: 10, Price: decimal.NewFromInt(110)},
			{ProductID: 2, Quantity: 5, Price: decimal.NewFromInt(55)},
		},
	}
	return export.OrderDocument{
		Company:  entity.Settings{CompanyName: "FreshStock Grocery", Currency: "INR"},
		Order:    entity.OrderView{Order: order, SupplierName: "Fresh Farms Produce", Total: order.Total()},
		Supplier: supplier,
		Lines: []export.OrderLine{
			{ProductID: 1, ProductName: "Fresh Apples", SKU: "FR-APP-RED", Unit: "kg", Quantity: 10,
				Price: decimal.NewFromInt(110), Subtotal: decimal.NewFromInt(1100)},
			{ProductID: 2, ProductName: "Milk & Cream", Quantity: 5,
				Price: decimal.NewFromInt(55), Subtotal: decimal.NewFromInt(275)},
		},
	}
}

func TestBuildOrderXML(t *testing.T) {
	out, err := NewOrderXMLBuilder().BuildOrderXML(context.Background(),
		sampleDoc(&entity.Supplier{ID: 1, Name: "Fresh Farms Produce", Email: "raj@freshfarms.com"}))
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "PurchaseOrder", root.Tag)
	assert.Equal(t, "PO-10001", root.SelectAttrValue("number", ""))
	assert.Equal(t, "Received", root.SelectAttrValue("status", ""))
	assert.Equal(t, "INR", root.SelectAttrValue("currency", ""))

	assert.Equal(t, "Fresh Farms Produce", root.FindElement("./Supplier/Name").Text())
	assert.Equal(t, "raj@freshfarms.com", root.FindElement("./Supplier/Email").Text())
	assert.Nil(t, root.FindElement("./Supplier/Phone"))

	items := root.FindElements("./Items/Item")
	require.Len(t, items, 2)
	assert.Equal(t, "FR-APP-RED", items[0].SelectAttrValue("sku", ""))
	assert.Equal(t, "Milk & Cream", items[1].FindElement("Name").Text())
	assert.Equal(t, "1375.00", root.FindElement("Total").Text())
}

func TestBuildOrderXML_ProveedorEliminado(t *testing.T) {
	out, err := NewOrderXMLBuilder().BuildOrderXML(context.Background(), sampleDoc(nil))
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Equal(t, entity.UnknownSupplierName, doc.Root().FindElement("./Supplier/Name").Text())
}
