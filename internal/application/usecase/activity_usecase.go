package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// MaxActivityLimit tope de entradas devueltas por consulta.
const MaxActivityLimit = 500

// ActivityUseCase lectura del registro de actividad.
type ActivityUseCase struct {
	repo repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// Recent devuelve las últimas limit actividades (más reciente primero).
func (uc *ActivityUseCase) Recent(ctx context.Context, limit int) ([]dto.ActivityResponse, error) {
	if limit < 0 || limit > MaxActivityLimit {
		return nil, fmt.Errorf("limit debe estar entre 0 y %d: %w", MaxActivityLimit, domain.ErrInvalidInput)
	}
	list, err := uc.repo.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return dto.ToActivityList(list), nil
}

// logActivity agrega una entrada al registro. La fecha la pone el repositorio.
func logActivity(ctx context.Context, repo repository.ActivityRepository, label, actor, details string) error {
	return repo.Append(ctx, &entity.Activity{Activity: label, User: actor, Details: details})
}

func parseOptionalDate(s string) (*entity.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := entity.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("fecha %q: %v: %w", s, err, domain.ErrInvalidInput)
	}
	return &d, nil
}
