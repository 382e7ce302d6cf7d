package document

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// Slot almacenamiento crudo del documento bajo una única clave.
// Read devuelve (nil, nil) cuando el slot todavía no existe.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

var _ repository.DocumentStore = (*Store)(nil)

// Store DocumentStore sobre un Slot. Un mutex serializa Load/Save/Update dentro del proceso.
type Store struct {
	mu   sync.Mutex
	slot Slot
	now  Clock
	log  zerolog.Logger
}

// NewStore construye el store. now se usa para sembrar el documento inicial.
func NewStore(slot Slot, now Clock, log zerolog.Logger) *Store {
	return &Store{slot: slot, now: now, log: log}
}

// Load devuelve una copia del documento, sembrándolo si el slot está vacío.
func (s *Store) Load(ctx context.Context) (*entity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save sobrescribe el documento completo.
func (s *Store) Save(ctx context.Context, doc *entity.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, doc)
}

// Update carga, ejecuta fn y persiste solo si fn no falla.
func (s *Store) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(ctx, doc)
}

func (s *Store) load(ctx context.Context) (*entity.Document, error) {
	data, err := s.slot.Read(ctx)
	if err != nil {
		return nil, err
	}
	if data == nil {
		doc := Default(s.now())
		if err := s.write(ctx, doc); err != nil {
			return nil, fmt.Errorf("sembrar documento: %w", err)
		}
		s.log.Info().Int("products", len(doc.Products)).Msg("documento inicial sembrado")
		return doc, nil
	}
	return Decode(data)
}

func (s *Store) write(ctx context.Context, doc *entity.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	return s.slot.Write(ctx, data)
}
