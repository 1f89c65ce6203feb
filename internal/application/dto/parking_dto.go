package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estacionamento-api/internal/domain/stay"
)

// ExitPreviewResponse cálculo de salida más el valor a cobrar (nil si no se puede calcular).
type ExitPreviewResponse struct {
	stay.ExitResult
	VehicleKey   string           `json:"vehicleKey,omitempty"`
	Method       string           `json:"method,omitempty"`
	Fee          *decimal.Decimal `json:"fee"`
	FormattedFee string           `json:"formattedFee,omitempty"`
}

// ExitRecordResponse salida registrada.
type ExitRecordResponse struct {
	ID                    string          `json:"id"`
	Plate                 string          `json:"plate"`
	Category              string          `json:"category"`
	VehicleKey            string          `json:"vehicleKey"`
	EntryAt               time.Time       `json:"entryAt"`
	ExitAt                time.Time       `json:"exitAt"`
	StaySeconds           int64           `json:"staySeconds"`
	FormattedStayDuration string          `json:"formattedStayDuration"`
	Method                string          `json:"method"`
	Fee                   decimal.Decimal `json:"fee"`
	FormattedFee          string          `json:"formattedFee"`
	CreatedBy             string          `json:"createdBy"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// ExitListResponse lista paginada de salidas.
type ExitListResponse struct {
	Items []ExitRecordResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// VehicleTotals totales de un tipo de vehículo en el día.
type VehicleTotals struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// DailySummaryResponse resumen de salidas de un día para el dashboard.
type DailySummaryResponse struct {
	Date           string                   `json:"date"` // DD/MM/YYYY
	Count          int                      `json:"count"`
	Total          decimal.Decimal          `json:"total"`
	FormattedTotal string                   `json:"formattedTotal"`
	ByVehicle      map[string]VehicleTotals `json:"byVehicle"`
}
