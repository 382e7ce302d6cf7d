package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/freshstock-api/internal/domain/entity"
	"github.com/jhoicas/freshstock-api/internal/domain/repository"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
)

var _ repository.DocumentStore = (*DocumentStore)(nil)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS app_documents (
	key        TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	revision   UUID NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// DocumentStore guarda el documento en una fila JSONB de app_documents.
// Update bloquea la fila con SELECT ... FOR UPDATE: dos procesos no pueden
// leer el mismo stock y confirmar ventas a la vez.
type DocumentStore struct {
	pool *pgxpool.Pool
	key  string
	now  document.Clock
	log  zerolog.Logger
}

// NewDocumentStore construye el store para la clave key.
func NewDocumentStore(pool *pgxpool.Pool, key string, now document.Clock, log zerolog.Logger) *DocumentStore {
	return &DocumentStore{pool: pool, key: key, now: now, log: log.With().Str("store", "postgres").Str("key", key).Logger()}
}

// EnsureSchema crea la tabla si no existe.
func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return unavailable("crear tabla app_documents", err)
	}
	return nil
}

// Load devuelve el documento, sembrándolo si la fila no existe.
func (s *DocumentStore) Load(ctx context.Context) (*entity.Document, error) {
	data, err := s.read(ctx, s.pool, false)
	if errors.Is(err, pgx.ErrNoRows) {
		var doc *entity.Document
		err = s.Update(ctx, func(d *entity.Document) error {
			doc = d
			return nil
		})
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, err
	}
	return document.Decode(data)
}

// Save sobrescribe el documento (upsert).
func (s *DocumentStore) Save(ctx context.Context, doc *entity.Document) error {
	data, err := document.Encode(doc)
	if err != nil {
		return err
	}
	return s.write(ctx, s.pool, data)
}

// Update ejecuta fn dentro de una transacción con la fila bloqueada.
func (s *DocumentStore) Update(ctx context.Context, fn func(doc *entity.Document) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return unavailable("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	data, err := s.read(ctx, tx, true)
	if errors.Is(err, pgx.ErrNoRows) {
		data, err = s.seed(ctx, tx)
	}
	if err != nil {
		return err
	}
	doc, err := document.Decode(data)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	encoded, err := document.Encode(doc)
	if err != nil {
		return err
	}
	if err := s.write(ctx, tx, encoded); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return unavailable("commit transaction", err)
	}
	return nil
}

// Revision identificador de la última escritura (uuid.Nil si no hay documento).
func (s *DocumentStore) Revision(ctx context.Context) (uuid.UUID, error) {
	var rev uuid.UUID
	err := s.pool.QueryRow(ctx, `SELECT revision FROM app_documents WHERE key = $1`, s.key).Scan(&rev)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, unavailable("leer revisión", err)
	}
	return rev, nil
}

func (s *DocumentStore) read(ctx context.Context, q Querier, lock bool) ([]byte, error) {
	query := `SELECT data FROM app_documents WHERE key = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	var data []byte
	err := q.QueryRow(ctx, query, s.key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, unavailable("leer documento", err)
	}
	return data, nil
}

// seed inserta los datos por defecto. Si otro proceso sembró primero se usa su fila.
func (s *DocumentStore) seed(ctx context.Context, tx pgx.Tx) ([]byte, error) {
	data, err := document.Encode(document.Default(s.now()))
	if err != nil {
		return nil, err
	}
	tag, err := tx.Exec(ctx,
		`INSERT INTO app_documents (key, data, revision, updated_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (key) DO NOTHING`,
		s.key, data, uuid.New(), s.now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return s.read(ctx, tx, true)
		}
		return nil, unavailable("sembrar documento", err)
	}
	if tag.RowsAffected() == 1 {
		s.log.Info().Msg("documento inicial sembrado")
	}
	return s.read(ctx, tx, true)
}

func (s *DocumentStore) write(ctx context.Context, q Querier, data []byte) error {
	_, err := q.Exec(ctx,
		`INSERT INTO app_documents (key, data, revision, updated_at) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, revision = EXCLUDED.revision, updated_at = EXCLUDED.updated_at`,
		s.key, data, uuid.New(), s.now().UTC())
	if err != nil {
		return unavailable("guardar documento", err)
	}
	return nil
}

// SalesTotal suma los montos de todas las ventas directamente en SQL (NUMERIC → decimal).
// Permite reportar sin decodificar el documento completo.
func (s *DocumentStore) SalesTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM((sale->>'amount')::numeric), 0)
		   FROM app_documents, jsonb_array_elements(data->'sales') AS sale
		  WHERE key = $1`, s.key).Scan(&total)
	if err != nil {
		return decimal.Zero, unavailable("sumar ventas", err)
	}
	return total, nil
}
