// Package redisstore implementa el almacén clave-valor sobre Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Estacionamento-api/internal/domain/repository"
	"github.com/jhoicas/Estacionamento-api/pkg/config"
)

var _ repository.KeyValueStore = (*KeyValueStore)(nil)

// DefaultPrefix antepuesto a todas las claves para compartir la instancia de Redis.
const DefaultPrefix = "estacionamento:"

// NewClient crea el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("redis addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: strings.TrimSpace(cfg.Password),
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// KeyValueStore almacén sin expiración; el TTL de la caché de caja lo decide la aplicación.
type KeyValueStore struct {
	client *redis.Client
	prefix string
}

// NewKeyValueStore construye el adaptador. prefix vacío = DefaultPrefix.
func NewKeyValueStore(client *redis.Client, prefix string) *KeyValueStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &KeyValueStore{client: client, prefix: prefix}
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}
