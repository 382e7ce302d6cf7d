package entity

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock es un entero de unidades (kg, botellas, etc.) y nunca es negativo.
type Product struct {
	ID          int             `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	SKU         string          `json:"sku" yaml:"sku"`
	Category    string          `json:"category" yaml:"category"`
	Stock       int             `json:"stock" yaml:"stock"`
	Unit        string          `json:"unit" yaml:"unit"`
	Price       decimal.Decimal `json:"price" yaml:"price"`
	ExpiryDate  *Date           `json:"expiryDate,omitempty" yaml:"expiryDate,omitempty"`
	Description string          `json:"description" yaml:"description"`
	CreatedAt   time.Time       `json:"createdAt" yaml:"createdAt"`
}

// Validate verifica los campos obligatorios y los conjuntos cerrados.
func (p Product) Validate() error {
	if p.Name == "" || p.SKU == "" {
		return errors.New("name y sku son requeridos")
	}
	if !IsValidCategory(p.Category) {
		return errors.New("categoría desconocida: " + p.Category)
	}
	if !IsValidUnit(p.Unit) {
		return errors.New("unidad desconocida: " + p.Unit)
	}
	if p.Stock < 0 {
		return errors.New("el stock no puede ser negativo")
	}
	if p.Price.IsNegative() {
		return errors.New("el precio no puede ser negativo")
	}
	return nil
}

// Value valor del inventario del producto (stock * precio).
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// ProductPatch actualización parcial de Product. ClearExpiry elimina la fecha de vencimiento.
type ProductPatch struct {
	Name        *string
	SKU         *string
	Category    *string
	Stock       *int
	Unit        *string
	Price       *decimal.Decimal
	ExpiryDate  *Date
	ClearExpiry bool
	Description *string
}

// Apply aplica el patch sobre p.
func (patch ProductPatch) Apply(p *Product) {
	setString(&p.Name, patch.Name)
	setString(&p.SKU, patch.SKU)
	setString(&p.Category, patch.Category)
	setInt(&p.Stock, patch.Stock)
	setString(&p.Unit, patch.Unit)
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.ClearExpiry {
		p.ExpiryDate = nil
	} else if patch.ExpiryDate != nil {
		d := *patch.ExpiryDate
		p.ExpiryDate = &d
	}
	setString(&p.Description, patch.Description)
}
