package dto

import "github.com/jhoicas/Estacionamento-api/internal/domain/billing"

// SaveBillingConfigRequest estado plano del formulario de cobro.
// Inputs usa claves "{vehículo}_{campo}" y "global_{campo}" (ej. car_valor_hora, global_tolerancia).
type SaveBillingConfigRequest struct {
	Method string            `json:"method"`
	Inputs map[string]string `json:"inputs"`
}

// BillingFormResponse configuración guardada expandida para repoblar el formulario.
type BillingFormResponse struct {
	Method string                `json:"method"`
	Inputs map[string]string     `json:"inputs"`
	Config billing.PaymentConfig `json:"config"`
}

// BillingMethodsResponse catálogo de métodos de cobro.
type BillingMethodsResponse struct {
	Items []billing.MethodDefinition `json:"items"`
}
