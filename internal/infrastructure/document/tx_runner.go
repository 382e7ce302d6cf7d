package document

import (
	"context"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks con repositorios atados a una única copia del documento.
// Todo lo hecho dentro de fn se persiste en una sola escritura, o nada si fn falla.
type TxRunner struct {
	store repository.DocumentStore
	now   Clock
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store repository.DocumentStore, now Clock) *TxRunner {
	return &TxRunner{store: store, now: now}
}

// Run abre la transacción, ejecuta fn con los repositorios de la transacción y confirma.
func (r *TxRunner) Run(ctx context.Context, fn func(tx repository.Tx) error) error {
	return r.store.Update(ctx, func(doc *entity.Document) error {
		s := Snapshot(doc)
		return fn(repository.Tx{
			Products:   NewProductRepository(s, r.now),
			Suppliers:  NewSupplierRepository(s, r.now),
			Orders:     NewOrderRepository(s, r.now),
			Sales:      NewSaleRepository(s, r.now),
			Activities: NewActivityRepository(s, r.now),
			Settings:   NewSettingsRepository(s),
		})
	})
}

// Repositories agrupa los repositorios en modo auto-commit (una escritura por llamada).
type Repositories struct {
	Products   *ProductRepository
	Suppliers  *SupplierRepository
	Orders     *OrderRepository
	Sales      *SaleRepository
	Activities *ActivityRepository
	Settings   *SettingsRepository
	Users      *UserRepository
}

// NewRepositories construye todos los repositorios sobre el store.
func NewRepositories(store repository.DocumentStore, now Clock) Repositories {
	s := AutoCommit(store)
	return Repositories{
		Products:   NewProductRepository(s, now),
		Suppliers:  NewSupplierRepository(s, now),
		Orders:     NewOrderRepository(s, now),
		Sales:      NewSaleRepository(s, now),
		Activities: NewActivityRepository(s, now),
		Settings:   NewSettingsRepository(s),
		Users:      NewUserRepository(s),
	}
}
