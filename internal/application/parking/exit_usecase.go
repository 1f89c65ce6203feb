// Package parking registra salidas de vehículos: permanencia, valor a cobrar y resumen diario.
package parking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estacionamento-api/internal/application/dto"
	"github.com/jhoicas/Estacionamento-api/internal/domain"
	"github.com/jhoicas/Estacionamento-api/internal/domain/billing"
	"github.com/jhoicas/Estacionamento-api/internal/domain/entity"
	"github.com/jhoicas/Estacionamento-api/internal/domain/repository"
	"github.com/jhoicas/Estacionamento-api/internal/domain/stay"
	"github.com/jhoicas/Estacionamento-api/pkg/clock"
	"github.com/jhoicas/Estacionamento-api/pkg/money"
)

// ConfigLoader fuente de la configuración de cobro vigente (nil si no hay).
type ConfigLoader interface {
	Load(ctx context.Context) (*billing.PaymentConfig, error)
}

// ExitUseCase orquesta el cálculo y registro de salidas.
type ExitUseCase struct {
	calc    *stay.Calculator
	configs ConfigLoader
	repo    repository.ExitRepository
	clock   clock.Clock
	log     zerolog.Logger
}

// NewExitUseCase construye el caso de uso. clk nil = reloj del sistema.
func NewExitUseCase(calc *stay.Calculator, configs ConfigLoader, repo repository.ExitRepository, clk clock.Clock, log zerolog.Logger) *ExitUseCase {
	if clk == nil {
		clk = clock.System()
	}
	return &ExitUseCase{calc: calc, configs: configs, repo: repo, clock: clk, log: log}
}

// Preview calcula la salida sin persistir. Si no hay configuración de cobro o la categoría
// no se reconoce, Fee queda en nil.
func (uc *ExitUseCase) Preview(ctx context.Context, in stay.ExitInput) (*dto.ExitPreviewResponse, error) {
	res := uc.calc.Compute(in, uc.clock.Now())
	if res == nil {
		return nil, fmt.Errorf("%w: hora de entrada inválida", domain.ErrInvalidInput)
	}
	out := &dto.ExitPreviewResponse{ExitResult: *res}

	cfg, err := uc.configs.Load(ctx)
	if err != nil {
		return nil, err
	}
	vehicle, known := billing.VehicleKeyFromCategory(in.Category)
	if known {
		out.VehicleKey = string(vehicle)
	}
	if cfg == nil || !known {
		return out, nil
	}

	fee, err := billing.CalculateFee(*cfg, vehicle, res.StaySeconds)
	if err != nil {
		uc.log.Warn().Err(err).Str("category", in.Category).Msg("no se pudo calcular el valor")
		return out, nil
	}
	out.Method = cfg.Method
	out.Fee = &fee
	out.FormattedFee = money.FormatBRL(fee)
	return out, nil
}

// Register calcula y persiste la salida con el valor cobrado.
func (uc *ExitUseCase) Register(ctx context.Context, in stay.ExitInput, userID string) (*dto.ExitRecordResponse, error) {
	if strings.TrimSpace(in.Plate) == "" {
		return nil, fmt.Errorf("%w: placa requerida", domain.ErrInvalidInput)
	}
	res := uc.calc.Compute(in, uc.clock.Now())
	if res == nil {
		return nil, fmt.Errorf("%w: hora de entrada inválida", domain.ErrInvalidInput)
	}

	cfg, err := uc.configs.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrBillingNotConfigured
	}
	vehicle, ok := billing.VehicleKeyFromCategory(in.Category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, in.Category)
	}
	fee, err := billing.CalculateFee(*cfg, vehicle, res.StaySeconds)
	if err != nil {
		return nil, err
	}

	record := &entity.ExitRecord{
		ID:          uuid.New().String(),
		Plate:       entity.NormalizePlate(in.Plate),
		Category:    in.Category,
		VehicleKey:  string(vehicle),
		EntryAt:     res.EntryAt.UTC(),
		ExitAt:      res.ExitAt.UTC(),
		StaySeconds: res.StaySeconds,
		Method:      cfg.Method,
		Fee:         fee,
		CreatedBy:   userID,
		CreatedAt:   uc.clock.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("registrar salida: %w", err)
	}
	uc.log.Info().
		Str("exit_id", record.ID).
		Str("plate", record.Plate).
		Int64("stay_seconds", record.StaySeconds).
		Str("fee", fee.StringFixed(2)).
		Msg("salida registrada")
	return toRecordResponse(record), nil
}

// List devuelve las salidas más recientes primero.
func (uc *ExitUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ExitListResponse, error) {
	page.Normalize()
	records, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar salidas: %w", err)
	}
	items := make([]dto.ExitRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, *toRecordResponse(r))
	}
	return &dto.ExitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// DailySummary totaliza las salidas del día (YYYY-MM-DD, vacío = hoy) en la zona del estacionamiento.
func (uc *ExitUseCase) DailySummary(ctx context.Context, date string) (*dto.DailySummaryResponse, error) {
	loc := uc.calc.Location()
	var day time.Time
	if strings.TrimSpace(date) == "" {
		now := uc.clock.Now().In(loc)
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	} else {
		parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(date), loc)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha %q (esperado YYYY-MM-DD)", domain.ErrInvalidInput, date)
		}
		day = parsed
	}

	records, err := uc.repo.ListBetween(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("listar salidas del día: %w", err)
	}

	out := &dto.DailySummaryResponse{
		Date:      day.Format("02/01/2006"),
		Total:     decimal.Zero,
		ByVehicle: make(map[string]dto.VehicleTotals, len(billing.VehicleKeys)),
	}
	for _, k := range billing.VehicleKeys {
		out.ByVehicle[string(k)] = dto.VehicleTotals{Total: decimal.Zero}
	}
	for _, r := range records {
		t := out.ByVehicle[r.VehicleKey]
		t.Count++
		t.Total = t.Total.Add(r.Fee)
		out.ByVehicle[r.VehicleKey] = t
		out.Count++
		out.Total = out.Total.Add(r.Fee)
	}
	out.FormattedTotal = money.FormatBRL(out.Total)
	return out, nil
}

func toRecordResponse(r *entity.ExitRecord) *dto.ExitRecordResponse {
	return &dto.ExitRecordResponse{
		ID:                    r.ID,
		Plate:                 r.Plate,
		Category:              r.Category,
		VehicleKey:            r.VehicleKey,
		EntryAt:               r.EntryAt,
		ExitAt:                r.ExitAt,
		StaySeconds:           r.StaySeconds,
		FormattedStayDuration: stay.FormatDuration(r.StaySeconds),
		Method:                r.Method,
		Fee:                   r.Fee,
		FormattedFee:          money.FormatBRL(r.Fee),
		CreatedBy:             r.CreatedBy,
		CreatedAt:             r.CreatedAt,
	}
}
