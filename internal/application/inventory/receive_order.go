package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/freshstock-api/internal/application/ports"
	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// ReceiveOrderUseCase recibe órdenes de compra: acredita el stock de cada línea y
// marca la orden como Received en una sola transacción.
type ReceiveOrderUseCase struct {
	txRunner ports.TxRunner
	events   *ports.Notifier
	now      func() time.Time
}

// NewReceiveOrderUseCase construye el caso de uso.
func NewReceiveOrderUseCase(txRunner ports.TxRunner, events *ports.Notifier, now func() time.Time) *ReceiveOrderUseCase {
	return &ReceiveOrderUseCase{txRunner: txRunner, events: events, now: now}
}

// Receive recibe la orden orderID en nombre de user.
func (uc *ReceiveOrderUseCase) Receive(ctx context.Context, orderID int, user string) (*entity.OrderView, error) {
	var out *entity.OrderView
	err := uc.txRunner.Run(ctx, func(tx repository.Tx) error {
		v, err := ReceiveInTx(ctx, tx, orderID, user)
		out = v
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.events.PublishAfterCommit(ctx, ports.NewEvent(ports.EventOrderUpdated, user, *out, uc.now()))
	return out, nil
}

// ReceiveInTx aplica la recepción con los repositorios de una transacción ya abierta.
// Received → ErrAlreadyReceived; Cancelled → ErrInvalidTransition. Las líneas cuyo
// producto ya no existe se omiten.
func ReceiveInTx(ctx context.Context, tx repository.Tx, orderID int, user string) (*entity.OrderView, error) {
	order, err := tx.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	switch order.Status {
	case entity.OrderReceived:
		return nil, fmt.Errorf("%s: %w", order.PONumber, domain.ErrAlreadyReceived)
	case entity.OrderCancelled:
		return nil, fmt.Errorf("%s está cancelada: %w", order.PONumber, domain.ErrInvalidTransition)
	}

	for _, it := range order.Items {
		if _, err := tx.Products.AdjustStock(ctx, it.ProductID, it.Quantity); err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				continue
			}
			return nil, err
		}
	}

	received := entity.OrderReceived
	updated, err := tx.Orders.Update(ctx, orderID, entity.OrderPatch{Status: &received})
	if err != nil {
		return nil, err
	}
	err = tx.Activities.Append(ctx, &entity.Activity{
		Activity: entity.ActivityOrderReceived,
		User:     user,
		Details:  fmt.Sprintf("Received order %s - inventory updated", order.PONumber),
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
