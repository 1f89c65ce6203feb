// Package cashstatus mantiene en caché, con TTL fijo, si la caja del estacionamiento está abierta,
// para evitar consultas repetidas a la API remota entre pantallas.
package cashstatus

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Estacionamento-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamento-api/internal/domain/repository"
	"github.com/jhoicas/Estacionamento-api/pkg/clock"
)

// StorageKey clave única de la entrada en el almacén.
const StorageKey = "cashStatus"

// Cache caché best-effort del estado de caja. Ninguna operación propaga errores del almacén:
// se registran y se tratan como fallo de caché.
type Cache struct {
	store repository.KeyValueStore
	clock clock.Clock
	log   zerolog.Logger
}

// NewCache construye la caché sobre el almacén indicado.
func NewCache(store repository.KeyValueStore, clk clock.Clock, log zerolog.Logger) *Cache {
	if clk == nil {
		clk = clock.System()
	}
	return &Cache{store: store, clock: clk, log: log}
}

// Save guarda {cash, openedAt}. openedAt es la hora actual si cash no es nil; si no, nil.
func (c *Cache) Save(ctx context.Context, cash *entity.CashRecord) {
	entry := entity.StoredCashStatus{Cash: cash}
	if cash != nil {
		now := c.clock.Now().UTC()
		entry.OpenedAt = &now
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		c.log.Error().Err(err).Msg("serializar estado de caja")
		return
	}
	if err := c.store.Set(ctx, StorageKey, string(raw)); err != nil {
		c.log.Error().Err(err).Msg("guardar estado de caja en caché")
	}
}

// Get devuelve la entrada vigente o nil si no existe, no se puede leer o expiró.
// Una entrada expirada se borra del almacén.
func (c *Cache) Get(ctx context.Context) *entity.StoredCashStatus {
	raw, found, err := c.store.Get(ctx, StorageKey)
	if err != nil {
		c.log.Error().Err(err).Msg("leer estado de caja de caché")
		return nil
	}
	if !found {
		return nil
	}

	var entry entity.StoredCashStatus
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		c.log.Warn().Err(err).Msg("entrada de caché de caja ilegible, se ignora")
		return nil
	}

	if entry.OpenedAt != nil && c.clock.Now().Sub(*entry.OpenedAt) > CacheTTL {
		c.log.Debug().Time("opened_at", *entry.OpenedAt).Msg("caché de caja expirada")
		c.Clear(ctx)
		return nil
	}
	return &entry
}

// Update cambia el estado de la caja en caché y la vuelve a guardar (renovando openedAt).
// Sin entrada o con cash nil no hace nada.
func (c *Cache) Update(ctx context.Context, status entity.CashStatus) {
	entry := c.Get(ctx)
	if entry == nil || entry.Cash == nil {
		c.log.Warn().Str("status", string(status)).Msg("no hay caja en caché para actualizar")
		return
	}
	entry.Cash.Status = status
	c.Save(ctx, entry.Cash)
}

// Clear borra la entrada incondicionalmente.
func (c *Cache) Clear(ctx context.Context) {
	if err := c.store.Delete(ctx, StorageKey); err != nil {
		c.log.Error().Err(err).Msg("borrar estado de caja de caché")
	}
}
