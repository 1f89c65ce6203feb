package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estacionamento-api/internal/application/dto"
	"github.com/jhoicas/Estacionamento-api/internal/application/parking"
	"github.com/jhoicas/Estacionamento-api/internal/domain/stay"
)

// ExitHandler salidas de vehículos y resumen diario.
type ExitHandler struct {
	uc *parking.ExitUseCase
}

// NewExitHandler construye el handler.
func NewExitHandler(uc *parking.ExitUseCase) *ExitHandler {
	return &ExitHandler{uc: uc}
}

// Preview godoc
// @Summary      Calcular salida (permanencia y valor) sin registrar
// @Tags         exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  stay.ExitInput  true  "Vehículo y hora de entrada"
// @Success      200   {object}  dto.ExitPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/exits/preview [post]
func (h *ExitHandler) Preview(c *fiber.Ctx) error {
	var in stay.ExitInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Preview(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar salida
// @Tags         exits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  stay.ExitInput  true  "Vehículo y hora de entrada"
// @Success      201   {object}  dto.ExitRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/exits [post]
func (h *ExitHandler) Register(c *fiber.Ctx) error {
	var in stay.ExitInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.UserContext(), in, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar salidas registradas
// @Tags         exits
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ExitListResponse
// @Router       /api/exits [get]
func (h *ExitHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DailySummary godoc
// @Summary      Resumen de salidas del día
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Día YYYY-MM-DD (por defecto hoy)"
// @Success      200   {object}  dto.DailySummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ExitHandler) DailySummary(c *fiber.Ctx) error {
	out, err := h.uc.DailySummary(c.UserContext(), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
