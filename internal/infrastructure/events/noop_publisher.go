package events

import (
	"context"

	"github.com/jhoicas/freshstock-api/internal/application/ports"
)

var _ ports.EventPublisher = Noop{}

// Noop descarta los eventos. Se usa cuando NATS_URL está vacío.
type Noop struct{}

// Publish no hace nada.
func (Noop) Publish(context.Context, ports.Event) error { return nil }
