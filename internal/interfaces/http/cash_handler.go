package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estacionamento-api/internal/application/cashstatus"
	"github.com/jhoicas/Estacionamento-api/internal/application/dto"
	"github.com/jhoicas/Estacionamento-api/internal/domain/entity"
)

// CashHandler estado de caja (caché con TTL sobre la API remota).
type CashHandler struct {
	svc *cashstatus.Service
}

// NewCashHandler construye el handler.
func NewCashHandler(svc *cashstatus.Service) *CashHandler {
	return &CashHandler{svc: svc}
}

// Status godoc
// @Summary      Estado de la caja
// @Description  Lee de la caché (20 min); con refresh=true consulta la API remota.
// @Tags         cash
// @Security     Bearer
// @Produce      json
// @Param        refresh  query  bool  false  "Ignorar caché"
// @Success      200      {object}  dto.CashStatusResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/cash/status [get]
func (h *CashHandler) Status(c *fiber.Ctx) error {
	token := GetBearerToken(c)
	var (
		res *cashstatus.Result
		err error
	)
	if c.QueryBool("refresh", false) {
		res, err = h.svc.Refresh(c.UserContext(), token)
	} else {
		res, err = h.svc.Current(c.UserContext(), token)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toCashResponse(res))
}

// Update godoc
// @Summary      Actualizar estado de caja en caché
// @Tags         cash
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.UpdateCashStatusRequest  true  "OPEN | CLOSED"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cash/status [put]
func (h *CashHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCashStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.svc.SetStatus(c.UserContext(), entity.CashStatus(in.Status)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Clear godoc
// @Summary      Borrar caché de caja
// @Tags         cash
// @Security     Bearer
// @Success      204
// @Router       /api/cash/status [delete]
func (h *CashHandler) Clear(c *fiber.Ctx) error {
	h.svc.Invalidate(c.UserContext())
	return c.SendStatus(fiber.StatusNoContent)
}

func toCashResponse(res *cashstatus.Result) dto.CashStatusResponse {
	return dto.CashStatusResponse{
		Open:      res.Cash != nil && res.Cash.Status == entity.CashOpen,
		Cash:      res.Cash,
		FromCache: res.FromCache,
	}
}
