// Package billing modela los métodos de cobro del estacionamiento y la configuración de precios
// por tipo de vehículo. Todo es lógica pura: sin I/O ni estado.
package billing

// VehicleKey tipo de vehículo sobre el que se configuran precios independientes.
type VehicleKey string

const (
	VehicleCar        VehicleKey = "car"
	VehicleMotorcycle VehicleKey = "motorcycle"
	VehicleLargeCar   VehicleKey = "largeCar"
)

// VehicleKeys conjunto fijo y ordenado de tipos de vehículo.
var VehicleKeys = []VehicleKey{VehicleCar, VehicleMotorcycle, VehicleLargeCar}

// GlobalKey clave sintética que agrupa campos no ligados a un vehículo (tolerancia, extraInput).
const GlobalKey = "global"

// ToleranceKey clave del campo global de tolerancia en minutos.
const ToleranceKey = "tolerancia"

// Identificadores de los métodos del catálogo.
const (
	MethodPerMinute       = "por_minuto"
	MethodPerHour         = "por_hora"
	MethodPerHourFraction = "por_hora_fracionada"
)

// Claves de campos usadas por los métodos del catálogo.
const (
	FieldMinuteValue    = "valor_minuto"
	FieldHourValue      = "valor_hora"
	FieldFirstHourValue = "valor_primeira_hora"
	FieldFractionValue  = "valor_fracao"
	FieldFractionMinute = "minutos_fracao"
)

// FieldDescriptor describe un campo numérico del formulario.
type FieldDescriptor struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

// ToleranceDescriptor describe el campo global de tolerancia.
type ToleranceDescriptor struct {
	Key         string `json:"key"`
	Placeholder string `json:"placeholder"`
}

// MethodDefinition entrada del catálogo estático de métodos de cobro.
type MethodDefinition struct {
	Value       string              `json:"value"`
	Label       string              `json:"label"`
	Description string              `json:"description"`
	Tolerance   ToleranceDescriptor `json:"tolerance"`
	ExtraInput  *FieldDescriptor    `json:"extraInput"`
	Inputs      []FieldDescriptor   `json:"inputs"`
}

var defaultTolerance = ToleranceDescriptor{Key: ToleranceKey, Placeholder: "Ex: 10"}

var catalog = []MethodDefinition{
	{
		Value:       MethodPerMinute,
		Label:       "Por minuto",
		Description: "Cobra um valor fixo por minuto de permanência após a tolerância.",
		Tolerance:   defaultTolerance,
		Inputs: []FieldDescriptor{
			{Key: FieldMinuteValue, Label: "Valor por minuto (R$)", Placeholder: "Ex: 0.25"},
		},
	},
	{
		Value:       MethodPerHour,
		Label:       "Por hora",
		Description: "Cobra cada hora iniciada pelo valor da hora.",
		Tolerance:   defaultTolerance,
		Inputs: []FieldDescriptor{
			{Key: FieldHourValue, Label: "Valor por hora (R$)", Placeholder: "Ex: 8.00"},
		},
	},
	{
		Value:       MethodPerHourFraction,
		Label:       "Por hora fracionada",
		Description: "Cobra a primeira hora cheia e depois cada fração iniciada.",
		Tolerance:   defaultTolerance,
		ExtraInput:  &FieldDescriptor{Key: FieldFractionMinute, Label: "Minutos por fração", Placeholder: "Ex: 15"},
		Inputs: []FieldDescriptor{
			{Key: FieldFirstHourValue, Label: "Primeira hora (R$)", Placeholder: "Ex: 10.00"},
			{Key: FieldFractionValue, Label: "Valor da fração (R$)", Placeholder: "Ex: 2.50"},
		},
	},
}

// Catalog devuelve una copia profunda del catálogo de métodos de cobro.
func Catalog() []MethodDefinition {
	out := make([]MethodDefinition, len(catalog))
	for i, m := range catalog {
		out[i] = m.clone()
	}
	return out
}

// FindMethod busca un método por su Value. El resultado es una copia.
func FindMethod(value string) (MethodDefinition, bool) {
	for _, m := range catalog {
		if m.Value == value {
			return m.clone(), true
		}
	}
	return MethodDefinition{}, false
}

func (m MethodDefinition) clone() MethodDefinition {
	m.Inputs = append([]FieldDescriptor(nil), m.Inputs...)
	if m.ExtraInput != nil {
		extra := *m.ExtraInput
		m.ExtraInput = &extra
	}
	return m
}
