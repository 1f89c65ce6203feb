package stay_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estacionamento-api/internal/domain/stay"
)

var brt = time.FixedZone("BRT", -3*60*60)

func newCalculator() *stay.Calculator {
	return stay.NewCalculator(brt, zerolog.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Compute
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_ISOHoraExacta(t *testing.T) {
	now := time.Date(2025, 7, 10, 19, 58, 39, 0, time.UTC)
	in := stay.ExitInput{ID: "42", Plate: "ABC1D23", Category: "carro", Time: "2025-07-10T16:58:39.000Z", EntryTime: "10/07/2025 13:58"}

	res := newCalculator().Compute(in, now)
	require.NotNil(t, res)

	assert.Equal(t, "03:00:00", res.FormattedStayDuration)
	assert.Equal(t, "10800", res.StayDuration)
	assert.Equal(t, int64(10800), res.StaySeconds)
	assert.Equal(t, "10/07/2025 13:58", res.FormattedEntryTime)
	assert.Equal(t, "10/07/2025", res.ExitDate)
	assert.Equal(t, "16:58", res.ExitTime) // 19:58 UTC en BRT
	assert.Equal(t, in, res.ExitInput)
}

func TestCompute_FormatoBarraHoraLocal(t *testing.T) {
	entry := time.Date(2025, 7, 10, 16, 58, 39, 0, brt)
	now := entry.Add(time.Hour + 5*time.Minute + 30*time.Second)

	res := newCalculator().Compute(stay.ExitInput{Time: "10/07/2025 16:58:39"}, now)
	require.NotNil(t, res)

	assert.Equal(t, "01:05:30", res.FormattedStayDuration)
	assert.Equal(t, "3930", res.StayDuration)
	assert.True(t, entry.Equal(res.EntryAt))
	assert.Equal(t, "18:04", res.ExitTime)
}

func TestCompute_ISOSinZonaUsaZonaLocal(t *testing.T) {
	entry := time.Date(2025, 7, 10, 8, 0, 0, 0, brt)
	res := newCalculator().Compute(stay.ExitInput{Time: "2025-07-10T08:00:00"}, entry.Add(90*time.Second))
	require.NotNil(t, res)
	assert.Equal(t, "00:01:30", res.FormattedStayDuration)
}

func TestCompute_FraccionDeSegundoSeTrunca(t *testing.T) {
	entry := time.Date(2025, 7, 10, 8, 0, 0, 0, time.UTC)
	res := newCalculator().Compute(stay.ExitInput{Time: "2025-07-10T08:00:00Z"}, entry.Add(59*time.Second+999*time.Millisecond))
	require.NotNil(t, res)
	assert.Equal(t, "59", res.StayDuration)
}

func TestCompute_EntradaInvalidaDevuelveNil(t *testing.T) {
	now := time.Date(2025, 7, 10, 19, 58, 39, 0, time.UTC)
	calc := newCalculator()

	for _, raw := range []string{
		"",
		"   ",
		"not-a-date",
		"10/07/2025",          // sin hora
		"10/07/2025 16:58",    // sin segundos
		"31/02/2025 10:00:00", // día inexistente
		"10/13/2025 10:00:00", // mes fuera de rango
		"10/07/2025 24:00:00",
		"2025-13-10T10:00:00Z",
		"2025/07/10 10:00:00",
		"1752166719",
		"10/07/2025 16:58:39 lixo", // texto extra tras la hora
		"10/07/2025  16:58:39",
	} {
		assert.Nil(t, calc.Compute(stay.ExitInput{Time: raw}, now), "entrada %q", raw)
	}
}

func TestCompute_FechaMuyAntiguaNoSatura(t *testing.T) {
	now := time.Date(2025, 7, 10, 19, 58, 39, 0, time.UTC)
	res := newCalculator().Compute(stay.ExitInput{Time: "01/01/0001 00:00:00"}, now)
	require.NotNil(t, res)

	want := now.Unix() - time.Date(1, 1, 1, 0, 0, 0, 0, brt).Unix()
	assert.Equal(t, want, res.StaySeconds)
	assert.Greater(t, res.StaySeconds, int64(300*365*24*3600))
	assert.Equal(t, stay.FormatDuration(want), res.FormattedStayDuration)
}

func TestCompute_FraccionEnLaEntradaSeTrunca(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 10, 200_000_000, time.UTC)
	res := newCalculator().Compute(stay.ExitInput{Time: "2025-07-10T12:00:00.500Z"}, now)
	require.NotNil(t, res)
	assert.Equal(t, int64(9), res.StaySeconds)
}

func TestCompute_PermanenciaNegativa(t *testing.T) {
	entry := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	res := newCalculator().Compute(stay.ExitInput{Time: "2025-07-10T12:00:00Z"}, entry.Add(-(time.Hour + 61*time.Second)))
	require.NotNil(t, res)
	assert.Equal(t, "-3661", res.StayDuration)
	assert.Equal(t, "-01:01:01", res.FormattedStayDuration)
}

func TestCompute_JSONConservaCamposDeEntrada(t *testing.T) {
	now := time.Date(2025, 7, 10, 19, 58, 39, 0, time.UTC)
	res := newCalculator().Compute(stay.ExitInput{ID: "1", Plate: "XYZ", Category: "moto", Time: "2025-07-10T19:00:00Z", EntryTime: "16:00"}, now)
	require.NotNil(t, res)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "1", "plate": "XYZ", "category": "moto",
		"time": "2025-07-10T19:00:00Z", "entryTime": "16:00",
		"formattedEntryTime": "16:00",
		"exitDate": "10/07/2025", "exitTime": "16:58",
		"stayDuration": "3519", "formattedStayDuration": "00:58:39"
	}`, string(raw))
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseFlexible / FormatDuration
// ──────────────────────────────────────────────────────────────────────────────

func TestParseFlexible_ConOffset(t *testing.T) {
	got, ok := newCalculator().ParseFlexible("2025-07-10T16:58:39-03:00")
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2025, 7, 10, 19, 58, 39, 0, time.UTC)))
}

func TestFormatDuration(t *testing.T) {
	tests := map[int64]string{
		0:      "00:00:00",
		59:     "00:00:59",
		60:     "00:01:00",
		3599:   "00:59:59",
		86400:  "24:00:00",
		360000: "100:00:00",
		-59:    "-00:00:59",
	}
	for in, want := range tests {
		assert.Equal(t, want, stay.FormatDuration(in), "%d", in)
	}
}
