// Package export genera las representaciones descargables de las órdenes de compra.
package export

import (
	"context"
	"fmt"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/analytics"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// OrderExportUseCase arma el OrderDocument desde una instantánea del documento y
// delega el formato en los generadores.
type OrderExportUseCase struct {
	store repository.DocumentStore
	pdf   OrderPDFGenerator
	xml   OrderXMLBuilder
}

// NewOrderExportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewOrderExportUseCase(store repository.DocumentStore, pdf OrderPDFGenerator, xml OrderXMLBuilder) *OrderExportUseCase {
	return &OrderExportUseCase{store: store, pdf: pdf, xml: xml}
}

// OrderPDF devuelve el PDF de la orden y el nombre de archivo sugerido.
func (uc *OrderExportUseCase) OrderPDF(ctx context.Context, orderID int) (pdfBytes []byte, filename string, err error) {
	doc, err := uc.Document(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.pdf.GenerateOrderPDF(ctx, *doc)
	if err != nil {
		return nil, "", fmt.Errorf("export: pdf %s: %w", doc.Order.PONumber, err)
	}
	return pdfBytes, doc.Order.PONumber + ".pdf", nil
}

// OrderXML devuelve el XML de la orden y el nombre de archivo sugerido.
func (uc *OrderExportUseCase) OrderXML(ctx context.Context, orderID int) (xmlBytes []byte, filename string, err error) {
	doc, err := uc.Document(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	xmlBytes, err = uc.xml.BuildOrderXML(ctx, *doc)
	if err != nil {
		return nil, "", fmt.Errorf("export: xml %s: %w", doc.Order.PONumber, err)
	}
	return xmlBytes, doc.Order.PONumber + ".xml", nil
}

// Document resuelve proveedor y productos de la orden. Las líneas de productos
// eliminados se muestran como "Unknown Product".
func (uc *OrderExportUseCase) Document(ctx context.Context, orderID int) (*OrderDocument, error) {
	snapshot, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	order := snapshot.FindOrder(orderID)
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	out := &OrderDocument{
		Company: snapshot.Settings,
		Order:   snapshot.ViewOrder(*order),
		Lines:   make([]OrderLine, 0, len(order.Items)),
	}
	if s := snapshot.FindSupplier(order.SupplierID); s != nil {
		c := *s
		out.Supplier = &c
	}
	for _, it := range order.Items {
		line := OrderLine{
			ProductID:   it.ProductID,
			ProductName: analytics.UnknownProductLabel,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Subtotal:    it.Subtotal(),
		}
		if p := snapshot.FindProduct(it.ProductID); p != nil {
			line.ProductName, line.SKU, line.Unit = p.Name, p.SKU, p.Unit
		}
		out.Lines = append(out.Lines, line)
	}
	return out, nil
}

// SupplierName nombre del proveedor o "Unknown Supplier".
func (d OrderDocument) SupplierName() string {
	if d.Supplier == nil {
		return entity.UnknownSupplierName
	}
	return d.Supplier.Name
}
