package entity

import (
	"errors"
	"time"
)

// Estados de proveedor.
const (
	SupplierActive   = "Active"
	SupplierInactive = "Inactive"
)

// Supplier proveedor de la tienda. Products es texto libre ("Milk, Cheese, ...").
type Supplier struct {
	ID        int       `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Contact   string    `json:"contact" yaml:"contact"`
	Phone     string    `json:"phone" yaml:"phone"`
	Email     string    `json:"email" yaml:"email"`
	Category  string    `json:"category" yaml:"category"`
	Products  string    `json:"products" yaml:"products"`
	Status    string    `json:"status" yaml:"status"`
	Address   string    `json:"address,omitempty" yaml:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Validate verifica nombre, categoría y estado.
func (s Supplier) Validate() error {
	if s.Name == "" {
		return errors.New("name es requerido")
	}
	if !IsValidCategory(s.Category) {
		return errors.New("categoría desconocida: " + s.Category)
	}
	if s.Status != SupplierActive && s.Status != SupplierInactive {
		return errors.New("estado de proveedor inválido: " + s.Status)
	}
	return nil
}

// SupplierPatch actualización parcial de Supplier.
type SupplierPatch struct {
	Name     *string
	Contact  *string
	Phone    *string
	Email    *string
	Category *string
	Products *string
	Status   *string
	Address  *string
}

// Apply aplica el patch sobre s.
func (p SupplierPatch) Apply(s *Supplier) {
	setString(&s.Name, p.Name)
	setString(&s.Contact, p.Contact)
	setString(&s.Phone, p.Phone)
	setString(&s.Email, p.Email)
	setString(&s.Category, p.Category)
	setString(&s.Products, p.Products)
	setString(&s.Status, p.Status)
	setString(&s.Address, p.Address)
}
