package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/analisis-ventas/docs"
	"github.com/jhoicas/analisis-ventas/internal/application/analytics"
	infrapdf "github.com/jhoicas/analisis-ventas/internal/infrastructure/pdf"
	"github.com/jhoicas/analisis-ventas/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/analisis-ventas/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/analisis-ventas/internal/interfaces/http"
	"github.com/jhoicas/analisis-ventas/pkg/config"
	"github.com/jhoicas/analisis-ventas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("tabla", cfg.Dashboard.Table).
		Msg("iniciando aplicación")

	// La conexión se abre en la primera pasada; si la base no responde el servicio
	// igual arranca y cada pasada lo informa como alerta.
	provider := postgres.NewProvider(cfg.DB, cfg.Dashboard.Table, log.Component("postgres"))
	defer provider.Close()

	loader := analytics.NewLoader(log.Component("loader"))
	dashboardUC := analytics.NewDashboardUseCase(provider, loader, analytics.DashboardConfig{
		TopClientes:  cfg.Dashboard.TopClientes,
		Moneda:       cfg.Dashboard.Moneda,
		QueryTimeout: cfg.Dashboard.QueryTimeout,
	}, log.Component("dashboard"))
	exportUC := analytics.NewExportUseCase(dashboardUC,
		infrapdf.NewMarotoReportGenerator(),
		infraxlsx.NewExcelizeExporter(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Análisis de Ventas API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
		Logger:      log.Component("http"),
		AppName:     cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
