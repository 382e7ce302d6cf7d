package repository

import (
	"context"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// DocumentStore define el puerto de persistencia del documento completo de la tienda.
// Todas las implementaciones serializan Update: es el único límite transaccional.
type DocumentStore interface {
	// Load devuelve una copia privada del documento. Si el slot está vacío lo siembra
	// con los datos por defecto y lo persiste antes de devolverlo.
	Load(ctx context.Context) (*entity.Document, error)
	// Save sobrescribe el documento completo (el último que escribe gana).
	Save(ctx context.Context, doc *entity.Document) error
	// Update carga una copia, ejecuta fn y persiste solo si fn devuelve nil.
	Update(ctx context.Context, fn func(doc *entity.Document) error) error
}
