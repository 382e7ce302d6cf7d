package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/application/ports"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// SettingsUseCase lectura y actualización de la configuración de la tienda.
type SettingsUseCase struct {
	repo   repository.SettingsRepository
	tx     ports.TxRunner
	events *ports.Notifier
	now    func() time.Time
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository, tx ports.TxRunner, events *ports.Notifier, now func() time.Time) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, tx: tx, events: events, now: now}
}

// Get devuelve la configuración vigente.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.ToSettingsResponse(*s)
	return &out, nil
}

// Update fusiona los campos enviados. Umbrales negativos o critical > low devuelven ErrInvalidInput.
func (uc *SettingsUseCase) Update(ctx context.Context, actor string, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	patch := entity.SettingsPatch{
		CompanyName:            in.CompanyName,
		Timezone:               in.Timezone,
		DateFormat:             in.DateFormat,
		Currency:               in.Currency,
		LowStockThreshold:      in.LowStockThreshold,
		CriticalStockThreshold: in.CriticalStockThreshold,
		ExpiryDaysThreshold:    in.ExpiryDaysThreshold,
		NotificationEmail:      in.NotificationEmail,
		SystemMessage:          in.SystemMessage,
	}
	var updated *entity.Settings
	err := uc.tx.Run(ctx, func(tx repository.Tx) error {
		s, err := tx.Settings.Update(ctx, patch)
		if err != nil {
			return err
		}
		updated = s
		return logActivity(ctx, tx.Activities, entity.ActivitySettingsUpdated, actor, "Updated system settings")
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToSettingsResponse(*updated)
	uc.events.PublishAfterCommit(ctx, ports.NewEvent(ports.EventSettingsUpdated, actor, out, uc.now()))
	return &out, nil
}
