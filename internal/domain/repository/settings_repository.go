package repository

import (
	"context"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
)

// SettingsRepository lee y actualiza la configuración persistida en el documento.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, patch entity.SettingsPatch) (*entity.Settings, error)
}
