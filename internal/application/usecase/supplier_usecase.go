package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/application/ports"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
	tx   ports.TxRunner
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, tx ports.TxRunner) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, tx: tx}
}

// List lista proveedores por búsqueda (nombre, contacto, email), categoría y estado.
func (uc *SupplierUseCase) List(ctx context.Context, in dto.SupplierFilterRequest) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx, repository.SupplierFilter{Search: in.Search, Category: in.Category, Status: in.Status})
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ToSupplierResponse(s))
	}
	return out, nil
}

// GetByID obtiene un proveedor.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id int) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToSupplierResponse(*s)
	return &out, nil
}

// Create crea el proveedor (Active por defecto) y registra "Supplier Added".
func (uc *SupplierUseCase) Create(ctx context.Context, actor string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		Name:     in.Name,
		Contact:  in.Contact,
		Phone:    in.Phone,
		Email:    in.Email,
		Category: in.Category,
		Products: in.Products,
		Status:   in.Status,
		Address:  in.Address,
	}
	if supplier.Status == "" {
		supplier.Status = entity.SupplierActive
	}
	err := uc.tx.Run(ctx, func(tx repository.Tx) error {
		if err := tx.Suppliers.Create(ctx, supplier); err != nil {
			return err
		}
		return logActivity(ctx, tx.Activities, entity.ActivitySupplierAdded, actor,
			fmt.Sprintf("Added new supplier %q", supplier.Name))
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToSupplierResponse(*supplier)
	return &out, nil
}

// Update aplica los campos enviados y registra "Supplier Updated".
func (uc *SupplierUseCase) Update(ctx context.Context, actor string, id int, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	patch := entity.SupplierPatch{
		Name:     in.Name,
		Contact:  in.Contact,
		Phone:    in.Phone,
		Email:    in.Email,
		Category: in.Category,
		Products: in.Products,
		Status:   in.Status,
		Address:  in.Address,
	}
	var updated *entity.Supplier
	err := uc.tx.Run(ctx, func(tx repository.Tx) error {
		s, err := tx.Suppliers.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		updated = s
		return logActivity(ctx, tx.Activities, entity.ActivitySupplierUpdated, actor,
			fmt.Sprintf("Updated supplier %q", s.Name))
	})
	if err != nil {
		return nil, err
	}
	out := dto.ToSupplierResponse(*updated)
	return &out, nil
}

// Delete elimina el proveedor. Las órdenes que lo referencian quedan con "Unknown Supplier".
func (uc *SupplierUseCase) Delete(ctx context.Context, actor string, id int) error {
	return uc.tx.Run(ctx, func(tx repository.Tx) error {
		s, err := tx.Suppliers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Suppliers.Delete(ctx, id); err != nil {
			return err
		}
		return logActivity(ctx, tx.Activities, entity.ActivitySupplierDeleted, actor,
			fmt.Sprintf("Deleted supplier %q", s.Name))
	})
}
