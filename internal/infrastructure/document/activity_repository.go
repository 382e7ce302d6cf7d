package document

import (
	"context"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepository)(nil)

// ActivityRepository registro de actividad guardado más reciente primero.
type ActivityRepository struct {
	session Session
	now     Clock
}

// NewActivityRepository construye el repositorio.
func NewActivityRepository(session Session, now Clock) *ActivityRepository {
	return &ActivityRepository{session: session, now: now}
}

// List devuelve todas las actividades.
func (r *ActivityRepository) List(ctx context.Context) ([]entity.Activity, error) {
	return r.Recent(ctx, 0)
}

// Recent devuelve las limit actividades más recientes (todas si limit <= 0).
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]entity.Activity, error) {
	out := []entity.Activity{}
	err := r.session.View(ctx, func(doc *entity.Document) error {
		items := doc.Activities
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}
		out = append(out, items...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Append asigna id y fecha y la inserta al principio.
func (r *ActivityRepository) Append(ctx context.Context, a *entity.Activity) error {
	if a.User == "" {
		a.User = entity.SystemUser
	}
	return r.session.Update(ctx, func(doc *entity.Document) error {
		a.ID = entity.NextID(doc.Activities, func(x entity.Activity) int { return x.ID })
		if a.Date.IsZero() {
			a.Date = stamp(r.now)
		}
		doc.Activities = append([]entity.Activity{*a}, doc.Activities...)
		return nil
	})
}
