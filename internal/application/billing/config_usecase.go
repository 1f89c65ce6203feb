package billing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Estacionamento-api/internal/application/dto"
	"github.com/jhoicas/Estacionamento-api/internal/domain"
	domainbilling "github.com/jhoicas/Estacionamento-api/internal/domain/billing"
	"github.com/jhoicas/Estacionamento-api/internal/domain/repository"
)

// ConfigStorageKey clave fija donde se guarda la PaymentConfig serializada.
const ConfigStorageKey = "paymentConfig"

// ConfigUseCase guarda y restaura la configuración de cobro del estacionamiento.
type ConfigUseCase struct {
	store repository.KeyValueStore
	log   zerolog.Logger
}

// NewConfigUseCase construye el caso de uso.
func NewConfigUseCase(store repository.KeyValueStore, log zerolog.Logger) *ConfigUseCase {
	return &ConfigUseCase{store: store, log: log}
}

// Methods devuelve el catálogo de métodos de cobro.
func (uc *ConfigUseCase) Methods() []domainbilling.MethodDefinition {
	return domainbilling.Catalog()
}

// Save normaliza la coma decimal, arma la PaymentConfig y la persiste. Método desconocido: ErrInvalidInput.
func (uc *ConfigUseCase) Save(ctx context.Context, in dto.SaveBillingConfigRequest) (*domainbilling.PaymentConfig, error) {
	method, ok := domainbilling.FindMethod(in.Method)
	if !ok {
		return nil, fmt.Errorf("%w: método de cobro %q", domain.ErrInvalidInput, in.Method)
	}

	normalized := make(map[string]string, len(in.Inputs))
	for k, v := range in.Inputs {
		normalized[k] = domainbilling.NormalizeDecimalInput(v)
	}
	cfg := domainbilling.Build(method, normalized)

	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("serializar configuración de cobro: %w", err)
	}
	if err := uc.store.Set(ctx, ConfigStorageKey, string(raw)); err != nil {
		return nil, fmt.Errorf("guardar configuración de cobro: %w", err)
	}
	uc.log.Info().Str("method", cfg.Method).Float64("tolerance", cfg.Tolerance).Msg("configuración de cobro guardada")
	return &cfg, nil
}

// Load devuelve la configuración guardada o nil si nunca se guardó.
func (uc *ConfigUseCase) Load(ctx context.Context) (*domainbilling.PaymentConfig, error) {
	raw, found, err := uc.store.Get(ctx, ConfigStorageKey)
	if err != nil {
		return nil, fmt.Errorf("leer configuración de cobro: %w", err)
	}
	if !found {
		return nil, nil
	}
	var cfg domainbilling.PaymentConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return nil, fmt.Errorf("decodificar configuración de cobro: %w", err)
	}
	return &cfg, nil
}

// Restore devuelve el método y los campos del formulario para edición. Sin configuración: nil.
func (uc *ConfigUseCase) Restore(ctx context.Context) (*dto.BillingFormResponse, error) {
	cfg, err := uc.Load(ctx)
	if err != nil {
		return nil, err
	}
	method, inputs, ok := domainbilling.Restore(cfg)
	if !ok {
		return nil, nil
	}
	return &dto.BillingFormResponse{Method: method, Inputs: inputs, Config: *cfg}, nil
}
