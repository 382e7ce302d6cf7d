package events

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/freshstock-api/internal/application/ports"
)

var _ ports.EventPublisher = (*CountingPublisher)(nil)

// CountingPublisher decora otro publicador y cuenta los eventos por tipo y resultado.
type CountingPublisher struct {
	next      ports.EventPublisher
	published *prometheus.CounterVec
}

// NewCountingPublisher registra freshstock_events_published_total en reg.
func NewCountingPublisher(next ports.EventPublisher, reg prometheus.Registerer) (*CountingPublisher, error) {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "freshstock",
		Name:      "events_published_total",
		Help:      "Eventos de dominio publicados, por tipo y resultado.",
	}, []string{"type", "result"})
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return &CountingPublisher{next: next, published: c}, nil
}

// Publish delega y cuenta el resultado ("ok" o "error").
func (p *CountingPublisher) Publish(ctx context.Context, ev ports.Event) error {
	err := p.next.Publish(ctx, ev)
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.published.WithLabelValues(ev.Type, result).Inc()
	return err
}
