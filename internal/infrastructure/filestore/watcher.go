package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce tiempo que se esperan más eventos antes de notificar un cambio.
const DefaultDebounce = 250 * time.Millisecond

// Watch observa el directorio del archivo y llama a onChange cuando otro proceso lo
// modifica. Las escrituras propias del Slot se ignoran. Bloquea hasta que ctx termina.
func (s *Slot) Watch(ctx context.Context, debounce time.Duration, log zerolog.Logger, onChange func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("crear watcher: %w", err)
	}
	defer w.Close()
	// Se observa el directorio: el rename reemplaza el inodo del archivo.
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("observar %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	timer := time.NewTimer(debounce)
	timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = true
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("error del watcher")

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			data, err := os.ReadFile(s.path)
			if err != nil || s.writtenByUs(data) {
				continue
			}
			log.Info().Str("path", s.path).Msg("documento modificado externamente")
			onChange()
		}
	}
}
