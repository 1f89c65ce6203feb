package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashStatus estado de la caja (turno) del estacionamiento.
type CashStatus string

const (
	CashOpen   CashStatus = "OPEN"
	CashClosed CashStatus = "CLOSED"
)

// Valid indica si el estado es uno de los reconocidos.
func (s CashStatus) Valid() bool {
	return s == CashOpen || s == CashClosed
}

// CashRecord caja abierta tal como la devuelve la API remota.
type CashRecord struct {
	ID            string          `json:"id"`
	Status        CashStatus      `json:"status"`
	OpeningAmount decimal.Decimal `json:"openingAmount"`
	Operator      string          `json:"operator,omitempty"`
	OpenedAt      *time.Time      `json:"openedAt,omitempty"` // apertura del turno en la API remota
}

// StoredCashStatus entrada de la caché local. OpenedAt es el instante de escritura de la entrada
// (no la apertura de la caja) y es nil cuando Cash es nil.
type StoredCashStatus struct {
	Cash     *CashRecord `json:"cash"`
	OpenedAt *time.Time  `json:"openedAt"`
}
