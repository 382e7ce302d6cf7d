package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Tipos de evento publicados después de cada mutación confirmada.
const (
	EventProductUpdated  = "product.updated"
	EventSaleRecorded    = "sale.recorded"
	EventOrderUpdated    = "order.updated"
	EventSettingsUpdated = "settings.updated"
)

// Event notificación de un cambio en el documento. Data es el recurso afectado.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Actor      string    `json:"actor"`
	Data       any       `json:"data"`
}

// EventPublisher define el puerto de salida para notificar cambios (NATS, no-op, etc.).
// Publish se llama con la transacción ya confirmada: un error de publicación
// se registra pero no revierte la operación.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}

// NewEvent construye un evento con id único.
func NewEvent(typ, actor string, data any, at time.Time) Event {
	return Event{ID: uuid.NewString(), Type: typ, OccurredAt: at.UTC(), Actor: actor, Data: data}
}

// Notifier publica los eventos de mutaciones ya confirmadas. Un fallo de publicación
// se registra con el logger inyectado y no revierte la operación.
type Notifier struct {
	pub EventPublisher
	log zerolog.Logger
}

// NewNotifier construye el notificador sobre pub.
func NewNotifier(pub EventPublisher, log zerolog.Logger) *Notifier {
	return &Notifier{pub: pub, log: log}
}

// PublishAfterCommit publica ev. Un Notifier nil o sin publicador no hace nada.
func (n *Notifier) PublishAfterCommit(ctx context.Context, ev Event) {
	if n == nil || n.pub == nil {
		return
	}
	if err := n.pub.Publish(ctx, ev); err != nil {
		n.log.Warn().Err(err).Str("event", ev.Type).Str("event_id", ev.ID).Msg("no se pudo publicar el evento")
	}
}
