package repository

// Tx repositorios atados a una misma transacción sobre el documento.
// Todo lo escrito a través de ellos se confirma junto o no se confirma.
type Tx struct {
	Products   ProductRepository
	Suppliers  SupplierRepository
	Orders     OrderRepository
	Sales      SaleRepository
	Activities ActivityRepository
	Settings   SettingsRepository
}
