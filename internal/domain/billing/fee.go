package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estacionamento-api/internal/domain"
)

// defaultFractionMinutes se usa cuando minutos_fracao no se configuró (0 o negativo).
const defaultFractionMinutes = 15

var categoryAliases = map[string]VehicleKey{
	"car":         VehicleCar,
	"carro":       VehicleCar,
	"moto":        VehicleMotorcycle,
	"motorcycle":  VehicleMotorcycle,
	"motocicleta": VehicleMotorcycle,
	"largecar":    VehicleLargeCar,
	"caminhonete": VehicleLargeCar,
	"utilitario":  VehicleLargeCar,
	"utilitário":  VehicleLargeCar,
}

// VehicleKeyFromCategory traduce la categoría que envía la API remota al tipo de vehículo.
func VehicleKeyFromCategory(category string) (VehicleKey, bool) {
	key, ok := categoryAliases[strings.ToLower(strings.TrimSpace(category))]
	return key, ok
}

// CalculateFee calcula el valor a cobrar por una permanencia de staySeconds.
//
// Minutos = techo(segundos/60). Dentro de la tolerancia no se cobra; superada, se cobra
// la permanencia completa según el método:
//   - por_minuto: minutos × valor_minuto
//   - por_hora: horas iniciadas × valor_hora
//   - por_hora_fracionada: valor_primeira_hora + fracciones iniciadas × valor_fracao
func CalculateFee(cfg PaymentConfig, vehicle VehicleKey, staySeconds int64) (decimal.Decimal, error) {
	group, ok := cfg.Values[string(vehicle)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: sin precios para %q", domain.ErrInvalidInput, vehicle)
	}
	if staySeconds <= 0 {
		return decimal.Zero, nil
	}

	minutes := ceilDiv(staySeconds, 60)
	if float64(minutes) <= cfg.Tolerance {
		return decimal.Zero, nil
	}

	var fee decimal.Decimal
	switch cfg.Method {
	case MethodPerMinute:
		fee = price(group, FieldMinuteValue).Mul(decimal.NewFromInt(minutes))
	case MethodPerHour:
		fee = price(group, FieldHourValue).Mul(decimal.NewFromInt(ceilDiv(minutes, 60)))
	case MethodPerHourFraction:
		fee = price(group, FieldFirstHourValue)
		if rest := minutes - 60; rest > 0 {
			fraction := int64(cfg.Values[GlobalKey][FieldFractionMinute])
			if fraction <= 0 {
				fraction = defaultFractionMinutes
			}
			fee = fee.Add(price(group, FieldFractionValue).Mul(decimal.NewFromInt(ceilDiv(rest, fraction))))
		}
	default:
		return decimal.Zero, fmt.Errorf("%w: método %q", domain.ErrInvalidInput, cfg.Method)
	}
	return fee.Round(2), nil
}

func price(group map[string]float64, field string) decimal.Decimal {
	return decimal.NewFromFloat(group[field])
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
