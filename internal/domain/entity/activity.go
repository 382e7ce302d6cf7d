package entity

import "time"

// Etiquetas del registro de actividad.
const (
	ActivityProductAdded    = "Product Added"
	ActivityProductUpdated  = "Product Updated"
	ActivityProductDeleted  = "Product Deleted"
	ActivitySupplierAdded   = "Supplier Added"
	ActivitySupplierUpdated = "Supplier Updated"
	ActivitySupplierDeleted = "Supplier Deleted"
	ActivityOrderCreated    = "Purchase Order Created"
	ActivityOrderUpdated    = "Order Updated"
	ActivityOrderStatus     = "Order Status Updated"
	ActivityOrderDeleted    = "Order Deleted"
	ActivityOrderReceived   = "Order Received"
	ActivitySaleRecorded    = "Sale Recorded"
	ActivitySettingsUpdated = "Settings Updated"
	ActivityUserLogin       = "User Login"
)

// SystemUser autor de las actividades generadas sin usuario autenticado.
const SystemUser = "System"

// Activity entrada del registro de auditoría (append-only, más reciente primero).
type Activity struct {
	ID       int       `json:"id" yaml:"id"`
	Date     time.Time `json:"date" yaml:"date"`
	Activity string    `json:"activity" yaml:"activity"`
	User     string    `json:"user" yaml:"user"`
	Details  string    `json:"details" yaml:"details"`
}
