package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tarifas.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_GuardaEnMemoria(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	path := writeCSV(t, "carro;valor_hora;8,50\nglobal;tolerancia;10\n")

	assert.NoError(t, run("por_hora", path))
}

func TestRun_DevuelveErroresEnLugarDeSalir(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")

	err := run("por_hora", filepath.Join(t.TempDir(), "no-existe.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abrir CSV")

	err = run("por_hora", writeCSV(t, "bicicleta;valor_hora;1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bicicleta")

	err = run("por_dia", writeCSV(t, "carro;valor_hora;1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "guardar configuración")

	t.Setenv("STORE_BACKEND", "sqlite")
	err = run("por_hora", writeCSV(t, "carro;valor_hora;1\n"))
	assert.Error(t, err)
}
