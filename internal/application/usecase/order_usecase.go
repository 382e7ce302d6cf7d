package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/freshstock-api/internal/application/dto"
	"github.com/jhoicas/freshstock-api/internal/application/inventory"
	"github.com/jhoicas/freshstock-api/internal/application/ports"
	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes de compra. Los cambios de estado respetan el ciclo
// Pending → Approved → Shipped → Received (Cancelled desde cualquier estado no terminal);
// pasar a Received acredita el inventario en la misma transacción.
type OrderUseCase struct {
	repo     repository.OrderRepository
	products repository.ProductRepository
	tx       ports.TxRunner
	events   *ports.Notifier
	now      func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	products repository.ProductRepository,
	tx ports.TxRunner,
	events *ports.Notifier,
	now func() time.Time,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, products: products, tx: tx, events: events, now: now}
}

// List lista órdenes por búsqueda (PO o proveedor), estado y ventana de fecha.
func (uc *OrderUseCase) List(ctx context.Context, in dto.OrderFilterRequest) ([]dto.OrderResponse, error) {
	if in.Status != "" && !entity.OrderStatus(in.Status).Valid() {
		return nil, fmt.Errorf("estado %q: %w", in.Status, domain.ErrInvalidInput)
	}
	switch in.Date {
	case "", repository.DateWindowToday, repository.DateWindowWeek, repository.DateWindowMonth, repository.DateWindowQuarter:
	default:
		return nil, fmt.Errorf("rango de fecha %q: %w", in.Date, domain.ErrInvalidInput)
	}
	list, err := uc.repo.List(ctx, repository.OrderFilter{
		Search: in.Search,
		Status: in.Status,
		Window: in.Date,
		Today:  entity.DateOf(uc.now()),
	})
	if err != nil {
		return nil, err
	}
	names, err := uc.productNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, v := range list {
		out = append(out, dto.ToOrderResponse(v, names))
	}
	return out, nil
}

// GetByID obtiene una orden con proveedor y total.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int) (*dto.OrderResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.respond(ctx, *v)
}

// Create crea la orden y registra "Purchase Order Created". Una orden creada
// directamente como Received acredita el stock en la misma transacción.
func (uc *OrderUseCase) Create(ctx context.Context, actor string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	date, err := parseOptionalDate(in.Date)
	if err != nil {
		return nil, err
	}
	status := entity.OrderStatus(in.Status)
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("estado %q: %w", in.Status, domain.ErrInvalidInput)
	}
	order := &entity.Order{
		SupplierID: in.SupplierID,
		Status:     status,
		Items:      toOrderItems(in.Items),
		Notes:      in.Notes,
	}
	if date != nil {
		order.Date = *date
	}
	receive := status == entity.OrderReceived
	if receive {
		order.Status = entity.OrderPending
	}

	var view *entity.OrderView
	err = uc.tx.Run(ctx, func(tx repository.Tx) error {
		if err := tx.Orders.Create(ctx, order); err != nil {
			return err
		}
		err := logActivity(ctx, tx.Activities, entity.ActivityOrderCreated, actor,
			fmt.Sprintf("Created purchase order %s", order.PONumber))
		if err != nil {
			return err
		}
		if receive {
			view, err = inventory.ReceiveInTx(ctx, tx, order.ID, actor)
			return err
		}
		view, err = tx.Orders.GetByID(ctx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, actor, *view)
	return uc.respond(ctx, *view)
}

// Update aplica los campos enviados. Las órdenes Received o Cancelled no admiten cambios.
func (uc *OrderUseCase) Update(ctx context.Context, actor string, id int, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	patch := entity.OrderPatch{SupplierID: in.SupplierID, Notes: in.Notes}
	if in.Date != nil {
		d, err := entity.ParseDate(*in.Date)
		if err != nil {
			return nil, fmt.Errorf("date: %v: %w", err, domain.ErrInvalidInput)
		}
		patch.Date = &d
	}
	if in.Items != nil {
		items := toOrderItems(*in.Items)
		patch.Items = &items
	}
	fieldsChanged := patch.SupplierID != nil || patch.Date != nil || patch.Items != nil || patch.Notes != nil

	var view *entity.OrderView
	err := uc.tx.Run(ctx, func(tx repository.Tx) error {
		current, err := tx.Orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		next := current.Status
		if in.Status != nil {
			next = entity.OrderStatus(*in.Status)
			if !next.Valid() {
				return fmt.Errorf("estado %q: %w", *in.Status, domain.ErrInvalidInput)
			}
		}
		if current.Status.Terminal() && (fieldsChanged || in.Status != nil) {
			if current.Status == entity.OrderReceived && next == entity.OrderReceived {
				return fmt.Errorf("%s: %w", current.PONumber, domain.ErrAlreadyReceived)
			}
			return fmt.Errorf("%s está en estado %s: %w", current.PONumber, current.Status, domain.ErrInvalidTransition)
		}

		view = current
		if fieldsChanged {
			if view, err = tx.Orders.Update(ctx, id, patch); err != nil {
				return err
			}
			if next == current.Status {
				return logActivity(ctx, tx.Activities, entity.ActivityOrderUpdated, actor,
					fmt.Sprintf("Updated order %s", current.PONumber))
			}
		}
		if next == current.Status {
			return nil
		}
		if !current.Status.CanTransition(next) {
			return fmt.Errorf("%s: %s → %s: %w", current.PONumber, current.Status, next, domain.ErrInvalidTransition)
		}
		if next == entity.OrderReceived {
			view, err = inventory.ReceiveInTx(ctx, tx, id, actor)
			return err
		}
		if view, err = tx.Orders.Update(ctx, id, entity.OrderPatch{Status: &next}); err != nil {
			return err
		}
		return logActivity(ctx, tx.Activities, entity.ActivityOrderStatus, actor,
			fmt.Sprintf("Order %s status changed from %s to %s", current.PONumber, current.Status, next))
	})
	if err != nil {
		return nil, err
	}
	uc.publish(ctx, actor, *view)
	return uc.respond(ctx, *view)
}

// Delete elimina la orden y registra "Order Deleted". No revierte stock de órdenes recibidas.
func (uc *OrderUseCase) Delete(ctx context.Context, actor string, id int) error {
	var deleted *entity.OrderView
	err := uc.tx.Run(ctx, func(tx repository.Tx) error {
		v, err := tx.Orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		deleted = v
		if err := tx.Orders.Delete(ctx, id); err != nil {
			return err
		}
		return logActivity(ctx, tx.Activities, entity.ActivityOrderDeleted, actor,
			fmt.Sprintf("Deleted order %s", v.PONumber))
	})
	if err != nil {
		return err
	}
	uc.publish(ctx, actor, *deleted)
	return nil
}

func (uc *OrderUseCase) respond(ctx context.Context, v entity.OrderView) (*dto.OrderResponse, error) {
	names, err := uc.productNames(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.ToOrderResponse(v, names)
	return &out, nil
}

func (uc *OrderUseCase) productNames(ctx context.Context) (map[int]string, error) {
	products, err := uc.products.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}

func (uc *OrderUseCase) publish(ctx context.Context, actor string, v entity.OrderView) {
	uc.events.PublishAfterCommit(ctx, ports.NewEvent(ports.EventOrderUpdated, actor, v, uc.now()))
}

func toOrderItems(in []dto.OrderItemDTO) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(in))
	for _, it := range in {
		items = append(items, entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
	}
	return items
}
