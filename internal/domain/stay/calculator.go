// Package stay calcula la permanencia de un vehículo a partir de su hora de entrada.
//
// La hora de entrada llega como texto en uno de dos formatos, según la pantalla que la produjo:
//   - ISO-8601 con hora: 2025-07-10T16:58:39.000Z (con o sin offset)
//   - DD/MM/YYYY HH:mm:ss: 10/07/2025 16:58:39 (hora local del estacionamiento)
package stay

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

// Layouts ISO aceptados, en orden. Los que no llevan zona se interpretan en la zona del Calculator.
var (
	isoZonedLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999Z0700"}
	isoLocalLayouts = []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"}
)

// ExitInput datos del vehículo recibidos de la API remota o de los parámetros de la ruta.
type ExitInput struct {
	ID        string `json:"id"`
	Plate     string `json:"plate"`
	Category  string `json:"category"`
	Time      string `json:"time"`      // entrada, ISO-8601 o DD/MM/YYYY HH:mm:ss
	EntryTime string `json:"entryTime"` // entrada ya formateada para mostrar
}

// ExitResult datos de salida derivados. Se recalcula en cada consulta; nunca se persiste.
type ExitResult struct {
	ExitInput
	FormattedEntryTime    string `json:"formattedEntryTime"`
	ExitDate              string `json:"exitDate"`
	ExitTime              string `json:"exitTime"`
	StayDuration          string `json:"stayDuration"` // segundos
	FormattedStayDuration string `json:"formattedStayDuration"`

	StaySeconds int64     `json:"-"`
	EntryAt     time.Time `json:"-"`
	ExitAt      time.Time `json:"-"`
}

// Calculator calcula permanencias. Es seguro para uso concurrente.
type Calculator struct {
	loc *time.Location
	log zerolog.Logger
}

// NewCalculator construye el calculador. loc es la zona del estacionamiento (nil = time.Local).
func NewCalculator(loc *time.Location, log zerolog.Logger) *Calculator {
	if loc == nil {
		loc = time.Local
	}
	return &Calculator{loc: loc, log: log}
}

// Location zona usada para fechas sin offset y para formatear la salida.
func (c *Calculator) Location() *time.Location {
	return c.loc
}

// ParseFlexible interpreta la hora de entrada. Prueba ISO-8601 y luego DD/MM/YYYY HH:mm:ss;
// cualquier otro formato devuelve false.
func (c *Calculator) ParseFlexible(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if isoPattern.MatchString(raw) {
		return c.parseISO(raw)
	}
	return c.parseSlash(raw)
}

func (c *Calculator) parseISO(raw string) (time.Time, bool) {
	for _, layout := range isoZonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	for _, layout := range isoLocalLayouts {
		if t, err := time.ParseInLocation(layout, raw, c.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (c *Calculator) parseSlash(raw string) (time.Time, bool) {
	parts := strings.Split(raw, " ")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return time.Time{}, false
	}

	date, ok := splitInts(parts[0], "/", 3)
	if !ok {
		return time.Time{}, false
	}
	clock, ok := splitInts(parts[1], ":", 3)
	if !ok {
		return time.Time{}, false
	}
	day, month, year := date[0], date[1], date[2]
	hour, minute, second := clock[0], clock[1], clock[2]

	if month < 1 || month > 12 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, c.loc)
	// time.Date normaliza 31/02 a marzo; eso es una fecha inválida, no otra fecha.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

func splitInts(s, sep string, n int) ([]int, bool) {
	fields := strings.Split(s, sep)
	if len(fields) != n {
		return nil, false
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// Compute deriva fecha/hora de salida y permanencia respecto de now.
// Devuelve nil si la hora de entrada falta o no se puede interpretar.
func (c *Calculator) Compute(in ExitInput, now time.Time) *ExitResult {
	if strings.TrimSpace(in.Time) == "" {
		c.log.Warn().Str("vehicle_id", in.ID).Msg("hora de entrada ausente")
		return nil
	}
	entry, ok := c.ParseFlexible(in.Time)
	if !ok {
		c.log.Warn().Str("vehicle_id", in.ID).Str("time", in.Time).Msg("hora de entrada no reconocida")
		return nil
	}

	local := now.In(c.loc)
	seconds := elapsedSeconds(entry, now)

	return &ExitResult{
		ExitInput:             in,
		FormattedEntryTime:    in.EntryTime,
		ExitDate:              local.Format("02/01/2006"),
		ExitTime:              local.Format("15:04"),
		StayDuration:          strconv.FormatInt(seconds, 10),
		FormattedStayDuration: FormatDuration(seconds),
		StaySeconds:           seconds,
		EntryAt:               entry,
		ExitAt:                now,
	}
}

// elapsedSeconds piso de (now - entry) en segundos. No usa time.Duration, que satura a ~292 años.
func elapsedSeconds(entry, now time.Time) int64 {
	secs := now.Unix() - entry.Unix()
	if now.Nanosecond() < entry.Nanosecond() {
		secs--
	}
	return secs
}

// FormatDuration convierte segundos a HH:MM:SS. Las horas pueden superar 99.
// Un valor negativo se formatea como "-" seguido del valor absoluto.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		return "-" + FormatDuration(-seconds)
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
