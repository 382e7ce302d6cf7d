package entity

// Categorías de productos y proveedores (conjunto cerrado).
var Categories = []string{
	"Fruits & Vegetables",
	"Dairy & Eggs",
	"Meat & Poultry",
	"Bakery",
	"Beverages",
	"Snacks",
	"Household",
}

// Units unidades de medida admitidas para productos.
var Units = []string{"kg", "g", "lb", "pcs", "pack", "bottle", "box"}

// IsValidCategory indica si c pertenece al conjunto de categorías.
func IsValidCategory(c string) bool {
	return contains(Categories, c)
}

// IsValidUnit indica si u es una unidad admitida.
func IsValidUnit(u string) bool {
	return contains(Units, u)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
