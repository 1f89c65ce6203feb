package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estacionamento-api/internal/application/billing"
	"github.com/jhoicas/Estacionamento-api/internal/application/dto"
)

// BillingHandler configuración de cobro del estacionamiento.
type BillingHandler struct {
	uc *billing.ConfigUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(uc *billing.ConfigUseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// Methods godoc
// @Summary      Catálogo de métodos de cobro
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BillingMethodsResponse
// @Router       /api/billing/methods [get]
func (h *BillingHandler) Methods(c *fiber.Ctx) error {
	return c.JSON(dto.BillingMethodsResponse{Items: h.uc.Methods()})
}

// GetConfig godoc
// @Summary      Configuración de cobro guardada (formato formulario)
// @Tags         billing
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BillingFormResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/billing/config [get]
func (h *BillingHandler) GetConfig(c *fiber.Ctx) error {
	out, err := h.uc.Restore(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "configuración de cobro no registrada"})
	}
	return c.JSON(out)
}

// SaveConfig godoc
// @Summary      Guardar configuración de cobro
// @Tags         billing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveBillingConfigRequest  true  "Método y campos del formulario"
// @Success      200   {object}  billing.PaymentConfig
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/billing/config [put]
func (h *BillingHandler) SaveConfig(c *fiber.Ctx) error {
	var in dto.SaveBillingConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.Method) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "method es requerido"})
	}
	out, err := h.uc.Save(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
