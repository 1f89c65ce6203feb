package cashstatus_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estacionamento-api/internal/application/cashstatus"
	"github.com/jhoicas/Estacionamento-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamento-api/internal/infrastructure/memory"
	"github.com/jhoicas/Estacionamento-api/pkg/clock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var t0 = time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

func newCache() (*cashstatus.Cache, *memory.KeyValueStore, *clock.FakeClock) {
	store := memory.NewKeyValueStore()
	clk := clock.NewFakeClock(t0)
	return cashstatus.NewCache(store, clk, zerolog.Nop()), store, clk
}

func openCash() *entity.CashRecord {
	return &entity.CashRecord{ID: "cx-1", Status: entity.CashOpen, OpeningAmount: decimal.NewFromInt(100), Operator: "ana"}
}

// failingStore falla en todas las operaciones.
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("almacén caído")
}
func (failingStore) Set(context.Context, string, string) error { return errors.New("almacén caído") }
func (failingStore) Delete(context.Context, string) error      { return errors.New("almacén caído") }

// ──────────────────────────────────────────────────────────────────────────────
// Save / Get
// ──────────────────────────────────────────────────────────────────────────────

func TestCache_SaveYGet(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCache()

	c.Save(ctx, openCash())
	got := c.Get(ctx)
	require.NotNil(t, got)
	require.NotNil(t, got.Cash)
	require.NotNil(t, got.OpenedAt)
	assert.Equal(t, "cx-1", got.Cash.ID)
	assert.Equal(t, entity.CashOpen, got.Cash.Status)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Cash.OpeningAmount))
	assert.True(t, t0.Equal(*got.OpenedAt))
}

func TestCache_GetSinEntrada(t *testing.T) {
	c, _, _ := newCache()
	assert.Nil(t, c.Get(context.Background()))
}

func TestCache_TTL19MinutosVigente(t *testing.T) {
	ctx := context.Background()
	c, _, clk := newCache()

	c.Save(ctx, openCash())
	clk.Advance(19 * time.Minute)
	assert.NotNil(t, c.Get(ctx))
}

func TestCache_TTLLimiteExactoVigente(t *testing.T) {
	ctx := context.Background()
	c, _, clk := newCache()

	c.Save(ctx, openCash())
	clk.Advance(cashstatus.CacheTTL)
	assert.NotNil(t, c.Get(ctx), "a los 20 minutos exactos la entrada sigue vigente")
}

func TestCache_TTL21MinutosExpiraYBorra(t *testing.T) {
	ctx := context.Background()
	c, store, clk := newCache()

	c.Save(ctx, openCash())
	clk.Advance(21 * time.Minute)
	assert.Nil(t, c.Get(ctx))

	_, found, err := store.Get(ctx, cashstatus.StorageKey)
	require.NoError(t, err)
	assert.False(t, found, "la entrada expirada debe borrarse del almacén")
}

func TestCache_CashNilNoExpira(t *testing.T) {
	ctx := context.Background()
	c, _, clk := newCache()

	c.Save(ctx, nil)
	got := c.Get(ctx)
	require.NotNil(t, got)
	assert.Nil(t, got.Cash)
	assert.Nil(t, got.OpenedAt)

	clk.Advance(48 * time.Hour)
	assert.NotNil(t, c.Get(ctx), "sin openedAt la entrada nunca expira")
}

func TestCache_FormatoAlmacenado(t *testing.T) {
	ctx := context.Background()
	c, store, _ := newCache()

	c.Save(ctx, nil)
	raw, found, err := store.Get(ctx, cashstatus.StorageKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"cash": null, "openedAt": null}`, raw)
}

func TestCache_EntradaCorruptaEsMiss(t *testing.T) {
	ctx := context.Background()
	c, store, _ := newCache()

	require.NoError(t, store.Set(ctx, cashstatus.StorageKey, "{no-json"))
	assert.Nil(t, c.Get(ctx))

	require.NoError(t, store.Set(ctx, cashstatus.StorageKey, `{"cash":null,"openedAt":"ayer"}`))
	assert.Nil(t, c.Get(ctx))
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Clear
// ──────────────────────────────────────────────────────────────────────────────

func TestCache_UpdateCambiaEstadoYRenuevaTTL(t *testing.T) {
	ctx := context.Background()
	c, _, clk := newCache()

	c.Save(ctx, openCash())
	clk.Advance(15 * time.Minute)
	c.Update(ctx, entity.CashClosed)

	clk.Advance(15 * time.Minute)
	got := c.Get(ctx)
	require.NotNil(t, got, "Update vuelve a guardar con openedAt actual")
	assert.Equal(t, entity.CashClosed, got.Cash.Status)
	assert.True(t, t0.Add(15*time.Minute).Equal(*got.OpenedAt))
}

func TestCache_UpdateSinEntradaNoHaceNada(t *testing.T) {
	ctx := context.Background()
	c, store, _ := newCache()

	c.Update(ctx, entity.CashOpen)
	_, found, _ := store.Get(ctx, cashstatus.StorageKey)
	assert.False(t, found)

	c.Save(ctx, nil)
	c.Update(ctx, entity.CashOpen)
	got := c.Get(ctx)
	require.NotNil(t, got)
	assert.Nil(t, got.Cash)
}

func TestCache_Clear(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCache()

	c.Save(ctx, openCash())
	c.Clear(ctx)
	assert.Nil(t, c.Get(ctx))
	c.Clear(ctx)
}

func TestCache_ErroresDelAlmacenNoSePropagan(t *testing.T) {
	ctx := context.Background()
	c := cashstatus.NewCache(failingStore{}, clock.NewFakeClock(t0), zerolog.Nop())

	assert.NotPanics(t, func() {
		c.Save(ctx, openCash())
		c.Update(ctx, entity.CashClosed)
		c.Clear(ctx)
	})
	assert.Nil(t, c.Get(ctx))
}
