package billing

import (
	"math"
	"strconv"
	"strings"
)

// PaymentConfig configuración normalizada de cobro. Values se indexa por tipo de vehículo
// (o GlobalKey) y luego por la clave del campo.
type PaymentConfig struct {
	Method    string                        `json:"method"`
	Tolerance float64                       `json:"tolerance"`
	Values    map[string]map[string]float64 `json:"values"`
}

// InputKey compone la clave plana del formulario: "{grupo}_{campo}".
func InputKey(group, field string) string {
	return group + "_" + field
}

// Build convierte el estado plano del formulario en una PaymentConfig completa.
// Cualquier texto no numérico se convierte en 0; nunca falla.
func Build(method MethodDefinition, inputs map[string]string) PaymentConfig {
	cfg := PaymentConfig{
		Method:    method.Value,
		Tolerance: parseNumber(inputs[InputKey(GlobalKey, ToleranceKey)]),
		Values:    make(map[string]map[string]float64, len(VehicleKeys)+1),
	}

	for _, vehicle := range VehicleKeys {
		group := make(map[string]float64, len(method.Inputs))
		for _, in := range method.Inputs {
			group[in.Key] = parseNumber(inputs[InputKey(string(vehicle), in.Key)])
		}
		cfg.Values[string(vehicle)] = group
	}

	if method.ExtraInput != nil {
		key := method.ExtraInput.Key
		cfg.Values[GlobalKey] = map[string]float64{
			key: parseNumber(inputs[InputKey(GlobalKey, key)]),
		}
	}
	return cfg
}

// Restore expande una configuración guardada al estado plano del formulario.
// Con cfg nil devuelve ok=false y no emite nada.
func Restore(cfg *PaymentConfig) (method string, inputs map[string]string, ok bool) {
	if cfg == nil {
		return "", nil, false
	}

	inputs = make(map[string]string)
	for vehicle, group := range cfg.Values {
		if vehicle == GlobalKey {
			continue
		}
		for field, value := range group {
			inputs[InputKey(vehicle, field)] = formatNumber(value)
		}
	}

	inputs[InputKey(GlobalKey, ToleranceKey)] = formatNumber(cfg.Tolerance)

	if def, found := FindMethod(cfg.Method); found && def.ExtraInput != nil {
		if value, set := cfg.Values[GlobalKey][def.ExtraInput.Key]; set {
			inputs[InputKey(GlobalKey, def.ExtraInput.Key)] = formatNumber(value)
		}
	}
	return cfg.Method, inputs, true
}

// NormalizeDecimalInput convierte texto con coma decimal ("5,50", "1.234,50") a punto decimal.
// El texto que ya usa punto decimal se devuelve sin cambios.
func NormalizeDecimalInput(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.Contains(s, ",") {
		return s
	}
	s = strings.ReplaceAll(s, ".", "")
	return strings.Replace(s, ",", ".", 1)
}

func parseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
