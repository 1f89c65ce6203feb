package cashstatus

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Estacionamento-api/internal/domain"
	"github.com/jhoicas/Estacionamento-api/internal/domain/entity"
)

// Service lectura read-through del estado de caja: primero la caché, luego la API remota.
type Service struct {
	cache  *Cache
	remote RemoteSource
	log    zerolog.Logger
}

// NewService construye el servicio.
func NewService(cache *Cache, remote RemoteSource, log zerolog.Logger) *Service {
	return &Service{cache: cache, remote: remote, log: log}
}

// Result estado actual y si provino de la caché.
type Result struct {
	Cash      *entity.CashRecord
	FromCache bool
}

// Current devuelve la caja abierta (o nil si no hay). Una entrada en caché con cash nil
// también es un acierto: significa "no hay caja abierta".
func (s *Service) Current(ctx context.Context, token string) (*Result, error) {
	if entry := s.cache.Get(ctx); entry != nil {
		return &Result{Cash: entry.Cash, FromCache: true}, nil
	}
	return s.fetch(ctx, token)
}

// Refresh ignora la caché y consulta la API remota.
func (s *Service) Refresh(ctx context.Context, token string) (*Result, error) {
	s.cache.Clear(ctx)
	return s.fetch(ctx, token)
}

// SetStatus actualiza el estado en caché tras abrir o cerrar la caja en la API remota.
func (s *Service) SetStatus(ctx context.Context, status entity.CashStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidInput
	}
	s.cache.Update(ctx, status)
	return nil
}

// Invalidate borra la caché.
func (s *Service) Invalidate(ctx context.Context) {
	s.cache.Clear(ctx)
}

func (s *Service) fetch(ctx context.Context, token string) (*Result, error) {
	if s.remote == nil {
		return nil, domain.ErrRemoteUnavailable
	}
	cash, err := s.remote.OpenCash(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, err
		}
		s.log.Error().Err(err).Msg("consultar caja abierta en API remota")
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	s.cache.Save(ctx, cash)
	return &Result{Cash: cash}, nil
}
