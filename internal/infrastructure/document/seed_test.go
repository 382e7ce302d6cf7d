package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/inventory"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
)

func TestDefault_EsValidoYCubreLosEstados(t *testing.T) {
	doc := document.Default(now)
	require.NoError(t, document.Validate(doc))

	th := inventory.ThresholdsFrom(doc.Settings)
	today := entity.DateOf(now)
	got := map[string]inventory.StockStatus{}
	for _, p := range doc.Products {
		got[p.Name] = inventory.Classify(p, th, today).Status
	}
	assert.Equal(t, map[string]inventory.StockStatus{
		"Fresh Apples":   inventory.StatusInStock,
		"Milk":           inventory.StatusInStock,
		"Chicken Breast": inventory.StatusExpiringSoon,
		"White Bread":    inventory.StatusExpired,
		"Mineral Water":  inventory.StatusOutOfStock,
		"Oil":            inventory.StatusCritical,
	}, got)

	for _, o := range doc.Orders {
		assert.Equal(t, entity.PONumberFor(o.ID), o.PONumber)
	}
}
