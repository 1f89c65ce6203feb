package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estacionamento-api/internal/application/billing"
	"github.com/jhoicas/Estacionamento-api/internal/application/cashstatus"
	"github.com/jhoicas/Estacionamento-api/internal/application/parking"
	"github.com/jhoicas/Estacionamento-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BillingConfig *billing.ConfigUseCase
	Exits         *parking.ExitUseCase
	CashStatus    *cashstatus.Service
	JWTSecret     string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(jwt.RoleAdmin)

	// Configuración de cobro (guardar: solo ADMIN)
	billingGroup := api.Group("/billing")
	billingHandler := NewBillingHandler(deps.BillingConfig)
	billingGroup.Get("/methods", billingHandler.Methods)
	billingGroup.Get("/config", billingHandler.GetConfig)
	billingGroup.Put("/config", adminOnly, billingHandler.SaveConfig)

	// Salidas
	exits := api.Group("/exits")
	exitHandler := NewExitHandler(deps.Exits)
	exits.Post("/preview", exitHandler.Preview)
	exits.Post("/", exitHandler.Register)
	exits.Get("/", adminOnly, exitHandler.List)

	// Dashboard (ADMIN)
	api.Get("/reports/daily", adminOnly, exitHandler.DailySummary)

	// Estado de caja
	cash := api.Group("/cash")
	cashHandler := NewCashHandler(deps.CashStatus)
	cash.Get("/status", cashHandler.Status)
	cash.Put("/status", cashHandler.Update)
	cash.Delete("/status", cashHandler.Clear)
}
