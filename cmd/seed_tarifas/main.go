// seed_tarifas importa las tarifas del sistema anterior (CSV) como configuración de cobro.
//
// Uso: go run ./cmd/seed_tarifas <método> [ruta/tarifas.csv]
// Por defecto lee tarifas.csv del directorio actual. Escribe en el almacén de STORE_BACKEND.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Estacionamento-api/internal/application/billing"
	"github.com/jhoicas/Estacionamento-api/internal/application/dto"
	"github.com/jhoicas/Estacionamento-api/internal/infrastructure/store"
	"github.com/jhoicas/Estacionamento-api/pkg/config"
	"github.com/jhoicas/Estacionamento-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: seed_tarifas <por_minuto|por_hora|por_hora_fracionada> [tarifas.csv]")
		os.Exit(2)
	}
	csvPath := "tarifas.csv"
	if len(os.Args) > 2 {
		csvPath = os.Args[2]
	}
	if err := run(os.Args[1], csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "seed_tarifas: %v\n", err)
		os.Exit(1)
	}
}

func run(method, csvPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel})

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	inputs, err := readTariffs(f)
	if err != nil {
		return fmt.Errorf("leer tarifas de %s: %w", csvPath, err)
	}
	log.Debug().Int("campos", len(inputs)).Str("path", csvPath).Msg("tarifas leídas")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stores, err := store.Open(ctx, cfg, log.Component("store"))
	if err != nil {
		return fmt.Errorf("abrir almacenamiento: %w", err)
	}
	defer stores.Close()

	uc := billing.NewConfigUseCase(stores.KV, log.Component("billing"))
	saved, err := uc.Save(ctx, dto.SaveBillingConfigRequest{Method: method, Inputs: inputs})
	if err != nil {
		return fmt.Errorf("guardar configuración: %w", err)
	}
	fmt.Printf("Configuración %s guardada (%s): tolerancia %v, %d grupos\n",
		saved.Method, cfg.Store.Backend, saved.Tolerance, len(saved.Values))
	return nil
}
