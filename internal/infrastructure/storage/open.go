// Package storage abre el DocumentStore elegido por STORE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/freshstock-api/internal/domain/repository"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/filestore"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/memory"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/freshstock-api/pkg/config"
)

// Handle store abierto más las operaciones que dependen del driver.
type Handle struct {
	Store  repository.DocumentStore
	Driver string

	exists func(ctx context.Context) (bool, error)
	watch  func(ctx context.Context, onChange func()) error
	close  func()
}

// Open construye el store. Con driver postgres conecta y crea la tabla si falta.
func Open(ctx context.Context, cfg config.StoreConfig, db config.DBConfig, now document.Clock, log zerolog.Logger) (*Handle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &Handle{Driver: cfg.Driver, close: func() {}}

	switch cfg.Driver {
	case config.StoreMemory:
		slot := &memory.Slot{}
		h.Store = document.NewStore(slot, now, log.With().Str("store", "memory").Logger())
		h.exists = slotExists(slot)

	case config.StoreFile:
		store, slot := filestore.NewStore(cfg.Path, now, log)
		h.Store = store
		h.exists = slotExists(slot)
		if cfg.Watch {
			h.watch = func(ctx context.Context, onChange func()) error {
				return slot.Watch(ctx, cfg.Debounce, log, onChange)
			}
		}

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, db)
		if err != nil {
			return nil, err
		}
		store := postgres.NewDocumentStore(pool, cfg.Key, now, log)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		if total, err := store.SalesTotal(ctx); err == nil {
			log.Info().Str("key", cfg.Key).Str("sales_total", total.String()).Msg("documento PostgreSQL listo")
		}
		h.Store = store
		h.exists = func(ctx context.Context) (bool, error) {
			rev, err := store.Revision(ctx)
			return rev != uuid.Nil, err
		}
		h.close = pool.Close
	}
	return h, nil
}

// Exists indica si ya hay un documento guardado (sin sembrarlo).
func (h *Handle) Exists(ctx context.Context) (bool, error) {
	return h.exists(ctx)
}

// Watchable indica si el driver puede avisar de ediciones externas.
func (h *Handle) Watchable() bool { return h.watch != nil }

// Watch bloquea hasta que ctx termina llamando a onChange por cada edición externa.
func (h *Handle) Watch(ctx context.Context, onChange func()) error {
	if h.watch == nil {
		return fmt.Errorf("el driver %s no soporta watch", h.Driver)
	}
	return h.watch(ctx, onChange)
}

// Close libera conexiones (pool de PostgreSQL).
func (h *Handle) Close() { h.close() }

func slotExists(slot document.Slot) func(ctx context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		data, err := slot.Read(ctx)
		return data != nil, err
	}
}
