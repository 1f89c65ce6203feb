package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Estacionamento-api/internal/domain/entity"
)

// ExitRepository define el puerto de persistencia para salidas registradas (DIP).
type ExitRepository interface {
	Create(ctx context.Context, record *entity.ExitRecord) error
	GetByID(ctx context.Context, id string) (*entity.ExitRecord, error)
	List(ctx context.Context, limit, offset int) ([]*entity.ExitRecord, error)
	// ListBetween devuelve las salidas con ExitAt en [from, to).
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.ExitRecord, error)
}
