package document_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
)

const fixtureYAML = `
settings:
  companyName: Crème Fraîche Market
  currency: EUR
  lowStockThreshold: 8
  criticalStockThreshold: 3
  expiryDaysThreshold: 5
users:
  - {id: 1, username: admin, password: secret, name: Admin, role: admin}
products:
  - id: 1
    name: Brie de Meaux
    sku: DA-BRIE
    category: Dairy & Eggs
    stock: 6
    unit: pcs
    price: 12.50
    expiryDate: 2026-03-14
suppliers:
  - {id: 1, name: Fromagerie, category: Dairy & Eggs, status: Active}
orders:
  - id: 1
    poNumber: PO-10001
    supplierId: 1
    date: 2026-03-01
    status: Received
    items:
      - {productId: 1, quantity: 10, price: 9.75}
sales:
  - {id: 1, date: 2026-03-09, productId: 1, quantity: 2, amount: 25, customer: Walk-in}
`

func TestLoadFixtures_UTF8(t *testing.T) {
	doc, err := document.LoadFixtures(strings.NewReader(fixtureYAML), "")
	require.NoError(t, err)
	assert.Equal(t, "Crème Fraîche Market", doc.Settings.CompanyName)
	require.Len(t, doc.Products, 1)
	assert.Equal(t, "12.5", doc.Products[0].Price.String())
	require.NotNil(t, doc.Products[0].ExpiryDate)
	assert.Equal(t, "2026-03-14", doc.Products[0].ExpiryDate.String())
	assert.Equal(t, "2026-03-01", doc.Orders[0].Date.String())
	assert.Equal(t, "97.5", doc.Orders[0].Total().String())
	assert.NotNil(t, doc.Activities, "las colecciones ausentes quedan como slices vacíos")
}

func TestLoadFixtures_Latin1(t *testing.T) {
	latin1, err := charmap.ISO8859_1.NewEncoder().String(fixtureYAML)
	require.NoError(t, err)
	require.NotEqual(t, fixtureYAML, latin1)

	doc, err := document.LoadFixtures(strings.NewReader(latin1), "latin1")
	require.NoError(t, err)
	assert.Equal(t, "Crème Fraîche Market", doc.Settings.CompanyName)
}

func TestLoadFixtures_Invalidas(t *testing.T) {
	cases := map[string]string{
		"campo desconocido":  "settings: {colour: red}",
		"umbral invertido":   "settings: {lowStockThreshold: 2, criticalStockThreshold: 5}",
		"categoría inválida": "products: [{id: 1, name: X, sku: X, category: Toys, unit: kg}]",
		"id duplicado": `products:
  - {id: 1, name: A, sku: A, category: Bakery, unit: pcs}
  - {id: 1, name: B, sku: B, category: Bakery, unit: pcs}`,
		"vacío": "",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := document.LoadFixtures(strings.NewReader(src), "utf-8")
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := document.LoadFixtures(strings.NewReader(fixtureYAML), "ebcdic")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

const fixtureBase = `
products:
  - {id: 1, name: A, sku: A, category: Bakery, unit: pcs}
suppliers:
  - {id: 1, name: Panadería, category: Bakery, status: Active}
`

func TestLoadFixtures_IdsYReferencias(t *testing.T) {
	cases := map[string]string{
		"orden duplicada": `orders:
  - {id: 1, supplierId: 1, date: 2026-03-01, status: Pending, items: [{productId: 1, quantity: 1, price: 1}]}
  - {id: 1, supplierId: 1, date: 2026-03-02, status: Pending, items: [{productId: 1, quantity: 2, price: 1}]}`,
		"orden con proveedor inexistente": `orders:
  - {id: 1, supplierId: 77, date: 2026-03-01, status: Pending, items: [{productId: 1, quantity: 1, price: 1}]}`,
		"orden con producto inexistente": `orders:
  - {id: 1, supplierId: 1, date: 2026-03-01, status: Pending, items: [{productId: 99, quantity: 1, price: 1}]}`,
		"venta duplicada": `sales:
  - {id: 1, date: 2026-03-09, productId: 1, quantity: 1, amount: 5}
  - {id: 1, date: 2026-03-09, productId: 1, quantity: 2, amount: 10}`,
		"venta con producto inexistente": `sales:
  - {id: 1, date: 2026-03-09, productId: 42, quantity: 1, amount: 5}`,
		"actividad duplicada": `activities:
  - {id: 3, date: 2026-03-09T10:00:00Z, activity: Sale Recorded, user: Admin}
  - {id: 3, date: 2026-03-09T11:00:00Z, activity: Sale Recorded, user: Admin}`,
		"usuario con id duplicado": `users:
  - {id: 1, username: a, password: x, name: A, role: admin}
  - {id: 1, username: b, password: x, name: B, role: manager}`,
	}
	for name, extra := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := document.LoadFixtures(strings.NewReader(fixtureBase+extra), "utf-8")
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	t.Run("id cero", func(t *testing.T) {
		src := "products:\n  - {id: 0, name: A, sku: A, category: Bakery, unit: pcs}\n"
		_, err := document.LoadFixtures(strings.NewReader(src), "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("referencias válidas", func(t *testing.T) {
		src := fixtureBase + `orders:
  - {id: 1, supplierId: 1, date: 2026-03-01, status: Pending, items: [{productId: 1, quantity: 1, price: 1}]}
sales:
  - {id: 1, date: 2026-03-09, productId: 1, quantity: 1, amount: 5}
`
		doc, err := document.LoadFixtures(strings.NewReader(src), "")
		require.NoError(t, err)
		assert.Len(t, doc.Orders, 1)
	})
}
