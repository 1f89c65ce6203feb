package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExitRecord salida registrada de un vehículo con la permanencia y el valor cobrado.
type ExitRecord struct {
	ID          string
	Plate       string // normalizada
	Category    string // tal como llegó de la API remota
	VehicleKey  string // car, motorcycle, largeCar
	EntryAt     time.Time
	ExitAt      time.Time
	StaySeconds int64
	Method      string // método de cobro vigente al momento de la salida
	Fee         decimal.Decimal
	CreatedBy   string // UserID
	CreatedAt   time.Time
}
