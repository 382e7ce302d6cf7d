package repository

import (
	"context"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	List(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id int) (*entity.User, error)
	// FindByUsername búsqueda exacta; ErrNotFound si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
