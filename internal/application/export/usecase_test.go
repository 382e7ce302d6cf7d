package export_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freshstock-api/internal/application/export"
	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/memory"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/xmlexport"
)

func fixedNow() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

type stubPDF struct{ got export.OrderDocument }

func (s *stubPDF) GenerateOrderPDF(_ context.Context, doc export.OrderDocument) ([]byte, error) {
	s.got = doc
	return []byte("%PDF-stub"), nil
}

func TestDocument_ResuelveProveedorYProductos(t *testing.T) {
	store := memory.NewStore(fixedNow)
	uc := export.NewOrderExportUseCase(store, &stubPDF{}, xmlexport.NewOrderXMLBuilder())

	doc, err := uc.Document(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "PO-10001", doc.Order.PONumber)
	assert.Equal(t, "Fresh Farms Produce", doc.SupplierName())
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "Fresh Apples", doc.Lines[0].ProductName)
	assert.Equal(t, "kg", doc.Lines[0].Unit)
	assert.Equal(t, "1375", doc.Order.Total.String())
}

func TestDocument_ProductoYProveedorEliminados(t *testing.T) {
	store := memory.NewStore(fixedNow)
	repos := document.NewRepositories(store, fixedNow)
	ctx := context.Background()
	require.NoError(t, repos.Products.Delete(ctx, 3))
	require.NoError(t, repos.Suppliers.Delete(ctx, 2))

	doc, err := export.NewOrderExportUseCase(store, &stubPDF{}, nil).Document(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Supplier", doc.SupplierName())
	assert.Equal(t, "Unknown Product", doc.Lines[0].ProductName)
}

func TestOrderPDFYXML(t *testing.T) {
	store := memory.NewStore(fixedNow)
	pdf := &stubPDF{}
	uc := export.NewOrderExportUseCase(store, pdf, xmlexport.NewOrderXMLBuilder())
	ctx := context.Background()

	out, name, err := uc.OrderPDF(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "PO-10002.pdf", name)
	assert.Equal(t, "%PDF-stub", string(out))
	assert.Equal(t, "Dairy Delight", pdf.got.SupplierName())

	xml, name, err := uc.OrderXML(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "PO-10002.xml", name)
	assert.Contains(t, string(xml), `number="PO-10002"`)

	_, _, err = uc.OrderPDF(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
