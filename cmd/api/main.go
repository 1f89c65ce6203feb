package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Estacionamento-api/internal/application/billing"
	"github.com/jhoicas/Estacionamento-api/internal/application/cashstatus"
	"github.com/jhoicas/Estacionamento-api/internal/application/parking"
	"github.com/jhoicas/Estacionamento-api/internal/domain/stay"
	"github.com/jhoicas/Estacionamento-api/internal/infrastructure/remoteapi"
	"github.com/jhoicas/Estacionamento-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/Estacionamento-api/internal/interfaces/http"
	"github.com/jhoicas/Estacionamento-api/pkg/clock"
	"github.com/jhoicas/Estacionamento-api/pkg/config"
	"github.com/jhoicas/Estacionamento-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "estacionamento-api: %v\n", err)
		os.Exit(1)
	}
}

// run arma y sirve la API hasta recibir SIGINT/SIGTERM.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Backend).
		Str("timezone", cfg.Billing.Timezone).
		Msg("iniciando aplicación")

	ctx := context.Background()
	stores, err := store.Open(ctx, cfg, log.Component("store"))
	if err != nil {
		return fmt.Errorf("abrir almacenamiento: %w", err)
	}
	defer stores.Close()

	clk := clock.System()
	calc := stay.NewCalculator(cfg.Billing.Location(), log.Component("stay"))
	configUC := billing.NewConfigUseCase(stores.KV, log.Component("billing"))
	exitUC := parking.NewExitUseCase(calc, configUC, stores.Exits, clk, log.Component("parking"))

	cashCache := cashstatus.NewCache(stores.KV, clk, log.Component("cashstatus"))
	var remote cashstatus.RemoteSource
	if cfg.RemoteAPI.BaseURL != "" {
		remote = remoteapi.NewCashClient(cfg.RemoteAPI)
	} else {
		log.Warn().Msg("REMOTE_API_URL no configurado: el estado de caja solo se sirve desde caché")
	}
	cashSvc := cashstatus.NewService(cashCache, remote, log.Component("cashstatus"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 15,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs (solo si existe el archivo)
	if _, err := os.Stat(cfg.App.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.DocsPath,
			Path:     "docs",
			Title:    "Estacionamento API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BillingConfig: configUC,
		Exits:         exitUC,
		CashStatus:    cashSvc,
		JWTSecret:     cfg.JWT.Secret,
	})

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(cfg.HTTP.Addr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		return fmt.Errorf("servidor HTTP: %w", err)
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
