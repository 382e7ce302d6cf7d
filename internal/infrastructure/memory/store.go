// Package memory provee un DocumentStore en memoria para tests y ejecuciones efímeras.
package memory

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
)

var _ document.Slot = (*Slot)(nil)

// Slot guarda el documento codificado en memoria.
type Slot struct {
	mu   sync.RWMutex
	data []byte
}

// Read devuelve una copia de los bytes guardados (nil si nunca se escribió).
func (s *Slot) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, nil
	}
	return append([]byte(nil), s.data...), nil
}

// Write reemplaza el contenido.
func (s *Slot) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}

// NewStore construye un document.Store vacío en memoria (se siembra en la primera lectura).
func NewStore(now document.Clock) *document.Store {
	return document.NewStore(&Slot{}, now, zerolog.Nop())
}
