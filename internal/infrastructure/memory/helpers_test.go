package memory_test

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/memory"
)

func newStore(slot *memory.Slot) *document.Store {
	return document.NewStore(slot, fixedNow, zerolog.Nop())
}
