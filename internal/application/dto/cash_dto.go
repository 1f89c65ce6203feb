package dto

import "github.com/jhoicas/Estacionamento-api/internal/domain/entity"

// CashStatusResponse estado de caja para la app.
type CashStatusResponse struct {
	Open      bool               `json:"open"`
	Cash      *entity.CashRecord `json:"cash"`
	FromCache bool               `json:"fromCache"`
}

// UpdateCashStatusRequest nuevo estado tras abrir/cerrar la caja en la API remota.
type UpdateCashStatusRequest struct {
	Status string `json:"status"` // OPEN | CLOSED
}
