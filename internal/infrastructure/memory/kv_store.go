// Package memory implementa los puertos de persistencia en memoria (desarrollo y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Estacionamento-api/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KeyValueStore)(nil)

// KeyValueStore almacén clave-valor en memoria; se pierde al reiniciar el proceso.
type KeyValueStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewKeyValueStore construye un almacén vacío.
func NewKeyValueStore() *KeyValueStore {
	return &KeyValueStore{data: map[string]string{}}
}

func (s *KeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *KeyValueStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *KeyValueStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
