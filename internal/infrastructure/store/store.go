// Package store abre los adaptadores de persistencia según STORE_BACKEND.
package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Estacionamento-api/internal/domain/repository"
	"github.com/jhoicas/Estacionamento-api/internal/infrastructure/memory"
	"github.com/jhoicas/Estacionamento-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Estacionamento-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/Estacionamento-api/pkg/config"
)

// Stores adaptadores abiertos. Close libera conexiones (pool, cliente Redis).
type Stores struct {
	KV    repository.KeyValueStore
	Exits repository.ExitRepository
	close []func()
}

// Close cierra las conexiones en orden inverso de apertura.
func (s *Stores) Close() {
	for i := len(s.close) - 1; i >= 0; i-- {
		s.close[i]()
	}
}

// Open crea los adaptadores del backend configurado:
//   - memory: todo en memoria (se pierde al reiniciar).
//   - redis: clave-valor en Redis; salidas en memoria.
//   - postgres: clave-valor y salidas en PostgreSQL.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Stores, error) {
	s := &Stores{}
	switch cfg.Store.Backend {
	case config.StoreMemory, "":
		s.KV = memory.NewKeyValueStore()
		s.Exits = memory.NewExitRepository()
	case config.StoreRedis:
		client, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("conexión a Redis: %w", err)
		}
		s.close = append(s.close, func() { _ = client.Close() })
		s.KV = redisstore.NewKeyValueStore(client, "")
		s.Exits = memory.NewExitRepository()
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		s.close = append(s.close, pool.Close)
		s.KV = postgres.NewKeyValueStore(pool)
		s.Exits = postgres.NewExitRepository(pool)
	default:
		return nil, fmt.Errorf("STORE_BACKEND desconocido: %q", cfg.Store.Backend)
	}
	log.Info().Str("backend", cfg.Store.Backend).Msg("almacenamiento listo")
	return s, nil
}
