package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Estacionamento-api/internal/domain/billing"
)

// readTariffs lee el CSV "veiculo;campo;valor" (ISO-8859-1, coma decimal) y devuelve el estado
// plano del formulario. Filas vacías y comentarios (#) se ignoran; una cabecera "veiculo" también.
// El vehículo se acepta con los mismos alias que la API remota (carro, moto, caminhonete...) o "global";
// cualquier otro es error.
func readTariffs(r io.Reader) (map[string]string, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	cr.Comma = ';'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	inputs := make(map[string]string)
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) != 3 {
			return nil, fmt.Errorf("línea %d: se esperaban 3 columnas, hay %d", line, len(rec))
		}
		vehicle := strings.TrimSpace(rec[0])
		field := strings.ToLower(strings.TrimSpace(rec[1]))
		if first && strings.EqualFold(vehicle, "veiculo") {
			first = false
			continue
		}
		first = false
		group, err := vehicleGroup(vehicle)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		inputs[billing.InputKey(group, field)] = billing.NormalizeDecimalInput(rec[2])
	}
	return inputs, nil
}

func vehicleGroup(name string) (string, error) {
	if strings.EqualFold(name, billing.GlobalKey) {
		return billing.GlobalKey, nil
	}
	key, ok := billing.VehicleKeyFromCategory(name)
	if !ok {
		return "", fmt.Errorf("vehículo desconocido %q", name)
	}
	return string(key), nil
}
