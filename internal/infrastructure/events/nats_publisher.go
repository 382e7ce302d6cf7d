// Package events implementa ports.EventPublisher sobre NATS y un publicador vacío.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/jhoicas/freshstock-api/internal/application/ports"
)

// DefaultSubjectPrefix prefijo de los subjects si no se configura otro.
const DefaultSubjectPrefix = "freshstock"

var _ ports.EventPublisher = (*NATSPublisher)(nil)

// NATSPublisher publica cada evento como JSON en "<prefijo>.<tipo>" (ej. freshstock.sale.recorded).
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

// NewNATSPublisher conecta con el servidor NATS indicado.
func NewNATSPublisher(url, prefix string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("freshstock-api"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return NewNATSPublisherFromConn(conn, prefix), nil
}

// NewNATSPublisherFromConn usa una conexión ya abierta.
func NewNATSPublisherFromConn(conn *nats.Conn, prefix string) *NATSPublisher {
	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSPublisher{conn: conn, prefix: prefix}
}

// Subject devuelve el subject para un tipo de evento.
func (p *NATSPublisher) Subject(eventType string) string {
	return p.prefix + "." + eventType
}

// Publish serializa el evento y lo envía. No espera confirmación del servidor.
func (p *NATSPublisher) Publish(ctx context.Context, ev ports.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("events: marshal %s: %w", ev.Type, err)
	}
	msg := nats.NewMsg(p.Subject(ev.Type))
	msg.Header.Set(nats.MsgIdHdr, ev.ID)
	msg.Data = payload
	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("events: publish %s: %w", ev.Type, err)
	}
	return nil
}

// Close vacía los mensajes pendientes y cierra la conexión.
func (p *NATSPublisher) Close() {
	if p.conn == nil {
		return
	}
	_ = p.conn.Drain()
	p.conn.Close()
}
