package storage_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/freshstock-api/internal/infrastructure/storage"
	"github.com/jhoicas/freshstock-api/pkg/config"
)

func fixedNow() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

func TestOpen_FileSiembraEnPrimeraLectura(t *testing.T) {
	ctx := context.Background()
	cfg := config.StoreConfig{Driver: config.StoreFile, Path: filepath.Join(t.TempDir(), "data", "inventdb.json"), Watch: true}
	h, err := storage.Open(ctx, cfg, config.DBConfig{}, fixedNow, zerolog.Nop())
	require.NoError(t, err)
	defer h.Close()

	exists, err := h.Exists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.True(t, h.Watchable())

	doc, err := h.Store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Products, 6)

	exists, err = h.Exists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestOpen_Memory(t *testing.T) {
	ctx := context.Background()
	h, err := storage.Open(ctx, config.StoreConfig{Driver: config.StoreMemory}, config.DBConfig{}, fixedNow, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, h.Watchable())
	assert.Error(t, h.Watch(ctx, func() {}))
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := storage.Open(context.Background(), config.StoreConfig{Driver: "redis"}, config.DBConfig{}, fixedNow, zerolog.Nop())
	assert.Error(t, err)
}
