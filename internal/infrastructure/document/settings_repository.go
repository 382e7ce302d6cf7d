package document

import (
	"context"
	"fmt"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository implementación de repository.SettingsRepository sobre el documento.
type SettingsRepository struct {
	session Session
}

// NewSettingsRepository construye el repositorio.
func NewSettingsRepository(session Session) *SettingsRepository {
	return &SettingsRepository{session: session}
}

// Get devuelve la configuración actual.
func (r *SettingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var out entity.Settings
	err := r.session.View(ctx, func(doc *entity.Document) error {
		out = doc.Settings
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update aplica el patch y valida umbrales antes de persistir.
func (r *SettingsRepository) Update(ctx context.Context, patch entity.SettingsPatch) (*entity.Settings, error) {
	var out entity.Settings
	err := r.session.Update(ctx, func(doc *entity.Document) error {
		merged := doc.Settings
		patch.Apply(&merged)
		if err := merged.Validate(); err != nil {
			return fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
		}
		doc.Settings = merged
		out = merged
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
