package ports_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/freshstock-api/internal/application/ports"
)

type failingPublisher struct{ calls int }

func (p *failingPublisher) Publish(context.Context, ports.Event) error {
	p.calls++
	return errors.New("nats: connection closed")
}

func TestNotifier_RegistraFallosConElLoggerInyectado(t *testing.T) {
	var buf bytes.Buffer
	pub := &failingPublisher{}
	n := ports.NewNotifier(pub, zerolog.New(&buf))

	ev := ports.NewEvent(ports.EventSaleRecorded, "Admin User", nil, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	n.PublishAfterCommit(context.Background(), ev)

	assert.Equal(t, 1, pub.calls)
	assert.Contains(t, buf.String(), "no se pudo publicar el evento")
	assert.Contains(t, buf.String(), `"event":"sale.recorded"`)
	assert.Contains(t, buf.String(), ev.ID)
}

func TestNotifier_NilNoHaceNada(t *testing.T) {
	var n *ports.Notifier
	assert.NotPanics(t, func() {
		n.PublishAfterCommit(context.Background(), ports.NewEvent(ports.EventOrderUpdated, "System", nil, time.Now()))
	})
	assert.NotPanics(t, func() {
		ports.NewNotifier(nil, zerolog.Nop()).PublishAfterCommit(context.Background(), ports.Event{})
	})
}
