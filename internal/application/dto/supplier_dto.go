package dto

import "time"

// CreateSupplierRequest entrada para crear un proveedor. Status vacío = Active.
type CreateSupplierRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Contact  string `json:"contact"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Category string `json:"category" validate:"required"`
	Products string `json:"products"`
	Status   string `json:"status"`
	Address  string `json:"address"`
}

// UpdateSupplierRequest actualización parcial de un proveedor.
type UpdateSupplierRequest struct {
	Name     *string `json:"name"`
	Contact  *string `json:"contact"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Category *string `json:"category"`
	Products *string `json:"products"`
	Status   *string `json:"status"`
	Address  *string `json:"address"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Category  string    `json:"category"`
	Products  string    `json:"products"`
	Status    string    `json:"status"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplierFilterRequest filtros de GET /api/suppliers.
type SupplierFilterRequest struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Status   string `query:"status"`
}
