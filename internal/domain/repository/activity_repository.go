package repository

import (
	"context"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// ActivityRepository registro de auditoría append-only. Siempre más reciente primero.
type ActivityRepository interface {
	List(ctx context.Context) ([]entity.Activity, error)
	// Recent devuelve como máximo limit entradas; limit <= 0 devuelve todas.
	Recent(ctx context.Context, limit int) ([]entity.Activity, error)
	Append(ctx context.Context, a *entity.Activity) error
}
