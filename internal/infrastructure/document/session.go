package document

import (
	"context"
	"time"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
)

// Session es el acceso de los repositorios al documento. View solo lee; Update puede
// modificar el documento recibido y persiste si fn devuelve nil.
type Session interface {
	View(ctx context.Context, fn func(doc *entity.Document) error) error
	Update(ctx context.Context, fn func(doc *entity.Document) error) error
}

// Clock fuente de la hora actual (inyectable en tests).
type Clock func() time.Time

// AutoCommit sesión sobre el store: cada llamada es su propia transacción.
func AutoCommit(store repository.DocumentStore) Session {
	return storeSession{store: store}
}

type storeSession struct {
	store repository.DocumentStore
}

func (s storeSession) View(ctx context.Context, fn func(doc *entity.Document) error) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	return fn(doc)
}

func (s storeSession) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	return s.store.Update(ctx, fn)
}

// Snapshot sesión atada a una copia del documento dentro de TxRunner.Run.
// Los cambios se escriben cuando termina la transacción, no en cada llamada.
func Snapshot(doc *entity.Document) Session {
	return snapshotSession{doc: doc}
}

type snapshotSession struct {
	doc *entity.Document
}

func (s snapshotSession) View(ctx context.Context, fn func(doc *entity.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s.doc)
}

func (s snapshotSession) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s.doc)
}
