package billing_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estacionamento-api/internal/application/billing"
	"github.com/jhoicas/Estacionamento-api/internal/application/dto"
	"github.com/jhoicas/Estacionamento-api/internal/domain"
	domainbilling "github.com/jhoicas/Estacionamento-api/internal/domain/billing"
	"github.com/jhoicas/Estacionamento-api/internal/infrastructure/memory"
)

func newConfigUseCase() (*billing.ConfigUseCase, *memory.KeyValueStore) {
	store := memory.NewKeyValueStore()
	return billing.NewConfigUseCase(store, zerolog.Nop()), store
}

func TestConfigUseCase_Methods(t *testing.T) {
	uc, _ := newConfigUseCase()
	methods := uc.Methods()
	require.Len(t, methods, 3)
	assert.Equal(t, domainbilling.MethodPerMinute, methods[0].Value)
}

func TestConfigUseCase_SaveNormalizaComaYPersiste(t *testing.T) {
	ctx := context.Background()
	uc, store := newConfigUseCase()

	cfg, err := uc.Save(ctx, dto.SaveBillingConfigRequest{
		Method: domainbilling.MethodPerHour,
		Inputs: map[string]string{
			"car_valor_hora":        "8,50",
			"motorcycle_valor_hora": "1.234,50",
			"largeCar_valor_hora":   "12.5",
			"global_tolerancia":     "10",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 8.5, cfg.Values["car"]["valor_hora"])
	assert.Equal(t, 1234.5, cfg.Values["motorcycle"]["valor_hora"])
	assert.Equal(t, 12.5, cfg.Values["largeCar"]["valor_hora"])
	assert.Equal(t, 10.0, cfg.Tolerance)

	raw, found, err := store.Get(ctx, billing.ConfigStorageKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{
		"method": "por_hora",
		"tolerance": 10,
		"values": {
			"car": {"valor_hora": 8.5},
			"motorcycle": {"valor_hora": 1234.5},
			"largeCar": {"valor_hora": 12.5}
		}
	}`, raw)
}

func TestConfigUseCase_SaveMetodoDesconocido(t *testing.T) {
	uc, _ := newConfigUseCase()
	_, err := uc.Save(context.Background(), dto.SaveBillingConfigRequest{Method: "por_dia"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigUseCase_LoadSinConfiguracion(t *testing.T) {
	uc, _ := newConfigUseCase()
	cfg, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cfg)

	form, err := uc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, form)
}

func TestConfigUseCase_LoadCorrupto(t *testing.T) {
	ctx := context.Background()
	uc, store := newConfigUseCase()
	require.NoError(t, store.Set(ctx, billing.ConfigStorageKey, "{"))

	_, err := uc.Load(ctx)
	assert.Error(t, err)
}

func TestConfigUseCase_RestoreFraccionada(t *testing.T) {
	ctx := context.Background()
	uc, _ := newConfigUseCase()

	_, err := uc.Save(ctx, dto.SaveBillingConfigRequest{
		Method: domainbilling.MethodPerHourFraction,
		Inputs: map[string]string{
			"car_valor_primeira_hora": "10",
			"car_valor_fracao":        "2,5",
			"global_minutos_fracao":   "15",
		},
	})
	require.NoError(t, err)

	form, err := uc.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, domainbilling.MethodPerHourFraction, form.Method)
	assert.Equal(t, "10", form.Inputs["car_valor_primeira_hora"])
	assert.Equal(t, "2.5", form.Inputs["car_valor_fracao"])
	assert.Equal(t, "0", form.Inputs["motorcycle_valor_fracao"])
	assert.Equal(t, "15", form.Inputs["global_minutos_fracao"])
	assert.Equal(t, "0", form.Inputs["global_tolerancia"])
	assert.Equal(t, 15.0, form.Config.Values["global"]["minutos_fracao"])
}
