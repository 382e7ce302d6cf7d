package ports

import (
	"context"

	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repositorios atados a una única transacción.
// Si fn devuelve error no se persiste nada: es la garantía de atomicidad de ventas
// y recepciones de órdenes.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx repository.Tx) error) error
}
