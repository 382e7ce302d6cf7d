// Package filestore guarda el documento como un archivo JSON local (driver por defecto).
package filestore

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
)

var _ document.Slot = (*Slot)(nil)

// Slot archivo JSON en disco. Las escrituras van a un temporal en el mismo directorio
// y se renombran sobre el destino, de modo que un lector nunca ve un archivo a medias.
type Slot struct {
	path string

	mu       sync.Mutex
	lastHash [sha256.Size]byte
}

// NewSlot construye el slot para path. El directorio se crea en la primera escritura.
func NewSlot(path string) *Slot {
	return &Slot{path: path}
}

// Path ruta del archivo.
func (s *Slot) Path() string { return s.path }

// Read lee el archivo; (nil, nil) si todavía no existe.
func (s *Slot) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %v: %w", s.path, err, domain.ErrStoreUnavailable)
	}
	return data, nil
}

// Write reemplaza el archivo de forma atómica (temporal + rename).
func (s *Slot) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %v: %w", dir, err, domain.ErrStoreUnavailable)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal: %v: %w", err, domain.ErrStoreUnavailable)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("escribir temporal: %v: %w", err, domain.ErrStoreUnavailable)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temporal: %v: %w", err, domain.ErrStoreUnavailable)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %v: %w", err, domain.ErrStoreUnavailable)
	}

	// El watcher consulta lastHash bajo el mismo mutex: no ve el archivo nuevo
	// antes de que el hash quede registrado, y un rename fallido no lo registra.
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("reemplazar %s: %v: %w", s.path, err, domain.ErrStoreUnavailable)
	}
	s.lastHash = sha256.Sum256(data)
	return nil
}

// writtenByUs indica si el contenido actual del archivo es el último que escribió este proceso.
func (s *Slot) writtenByUs(data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sha256.Sum256(data) == s.lastHash
}

// NewStore construye el DocumentStore sobre el archivo path.
func NewStore(path string, now document.Clock, log zerolog.Logger) (*document.Store, *Slot) {
	slot := NewSlot(path)
	return document.NewStore(slot, now, log.With().Str("store", "file").Str("path", path).Logger()), slot
}
