package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Estacionamento-api/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore almacén clave-valor sobre la tabla kv_store.
type KeyValueStore struct {
	pool *pgxpool.Pool
}

// NewKeyValueStore construye el adaptador.
func NewKeyValueStore(pool *pgxpool.Pool) *KeyValueStore {
	return &KeyValueStore{pool: pool}
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get kv %q: %w", key, err)
	}
	return value, true, nil
}

// Set inserta o reemplaza el valor.
func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set kv %q: %w", key, err)
	}
	return nil
}

// Delete borra la clave; una clave inexistente no es error.
func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete kv %q: %w", key, err)
	}
	return nil
}
