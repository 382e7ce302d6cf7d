package entity

import "github.com/shopspring/decimal"

func init() {
	// Montos como números JSON (no strings) para mantener la forma del documento.
	decimal.MarshalJSONWithoutQuotes = true
}

// Document es el estado completo de la tienda: se carga, se modifica en memoria
// y se vuelve a escribir entero en cada operación.
type Document struct {
	Settings   Settings   `json:"settings" yaml:"settings"`
	Users      []User     `json:"users" yaml:"users"`
	Products   []Product  `json:"products" yaml:"products"`
	Suppliers  []Supplier `json:"suppliers" yaml:"suppliers"`
	Orders     []Order    `json:"orders" yaml:"orders"`
	Activities []Activity `json:"activities" yaml:"activities"`
	Sales      []Sale     `json:"sales" yaml:"sales"`
}

// Normalize reemplaza colecciones nil por slices vacíos (el JSON usa [] y no null).
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Suppliers == nil {
		d.Suppliers = []Supplier{}
	}
	if d.Orders == nil {
		d.Orders = []Order{}
	}
	if d.Activities == nil {
		d.Activities = []Activity{}
	}
	if d.Sales == nil {
		d.Sales = []Sale{}
	}
}

// FindProduct devuelve un puntero al producto dentro del documento o nil.
func (d *Document) FindProduct(id int) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// FindSupplier devuelve un puntero al proveedor dentro del documento o nil.
func (d *Document) FindSupplier(id int) *Supplier {
	for i := range d.Suppliers {
		if d.Suppliers[i].ID == id {
			return &d.Suppliers[i]
		}
	}
	return nil
}

// FindOrder devuelve un puntero a la orden dentro del documento o nil.
func (d *Document) FindOrder(id int) *Order {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}

// ViewOrder construye la proyección de lectura de una orden.
func (d *Document) ViewOrder(o Order) OrderView {
	name := UnknownSupplierName
	if s := d.FindSupplier(o.SupplierID); s != nil {
		name = s.Name
	}
	return OrderView{Order: o, SupplierName: name, Total: o.Total()}
}

// NextID aplica la política de identificadores: max(ids)+1, o 1 si no hay registros.
func NextID[T any](items []T, id func(T) int) int {
	highest := 0
	for _, it := range items {
		if v := id(it); v > highest {
			highest = v
		}
	}
	return highest + 1
}
