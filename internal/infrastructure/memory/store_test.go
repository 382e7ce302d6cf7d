package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freshstock-api/internal/domain"
	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/memory"
)

func fixedNow() time.Time { return time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC) }

func TestStore_LoadSiembraUnaVez(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(fixedNow)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Products, 6)
	assert.Len(t, doc.Users, 2)
	assert.Len(t, doc.Suppliers, 2)
	assert.Len(t, doc.Orders, 2)
	assert.Len(t, doc.Sales, 4)
	assert.Len(t, doc.Activities, 1)

	doc.Products = nil
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, again.Products, 6, "Load devuelve copias privadas")
}

func TestStore_UpdateNoPersisteSiFalla(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(fixedNow)
	boom := errors.New("boom")

	err := store.Update(ctx, func(doc *entity.Document) error {
		doc.Products[0].Stock = 999
		return boom
	})
	require.ErrorIs(t, err, boom)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, doc.Products[0].Stock)
}

func TestStore_UpdatePersiste(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(fixedNow)

	require.NoError(t, store.Update(ctx, func(doc *entity.Document) error {
		doc.Settings.CompanyName = "Corner Shop"
		return nil
	}))
	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Corner Shop", doc.Settings.CompanyName)
}

func TestStore_DocumentoCorrupto(t *testing.T) {
	ctx := context.Background()
	slot := &memory.Slot{}
	require.NoError(t, slot.Write(ctx, []byte(`{"products": [`)))

	store := newStore(slot)
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreCorrupt)

	raw, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"products": [`, string(raw), "un documento corrupto nunca se vuelve a sembrar")
}
