package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/analisis-ventas/internal/application/analytics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *analytics.DashboardUseCase
	ExportUC    *analytics.ExportUseCase
	Logger      zerolog.Logger
	AppName     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api", requestid.New(), RequestLogger(deps.Logger))

	// Tablero de ventas (solo lectura)
	ventas := api.Group("/ventas")
	ventasHandler := NewVentasHandler(deps.DashboardUC, deps.ExportUC)
	ventas.Get("/dashboard", ventasHandler.GetDashboard)
	ventas.Get("/detalle", ventasHandler.GetDetalle)
	ventas.Get("/reporte.pdf", ventasHandler.GetReportePDF)
	ventas.Get("/detalle.xlsx", ventasHandler.GetDetalleXLSX)
}
