package cashstatus

import (
	"context"
	"time"

	"github.com/jhoicas/Estacionamento-api/internal/domain/entity"
)

// CacheTTL tiempo tras el cual una entrada de caché se descarta. No es configurable.
const CacheTTL = 20 * time.Minute

// RemoteSource fuente autoritativa del estado de caja (API remota).
// Devuelve nil, nil cuando no hay caja abierta.
type RemoteSource interface {
	OpenCash(ctx context.Context, token string) (*entity.CashRecord, error)
}
