package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/analisis-ventas/internal/application/alerts"
	"github.com/jhoicas/analisis-ventas/internal/application/analytics"
	"github.com/jhoicas/analisis-ventas/internal/application/dto"
	infrapdf "github.com/jhoicas/analisis-ventas/internal/infrastructure/pdf"
	"github.com/jhoicas/analisis-ventas/internal/infrastructure/postgres"
	infraxlsx "github.com/jhoicas/analisis-ventas/internal/infrastructure/xlsx"
	"github.com/jhoicas/analisis-ventas/pkg/config"
	"github.com/jhoicas/analisis-ventas/pkg/logger"
)

var version = "1.0.0"

// filtros flags compartidos por todos los subcomandos.
type filtros struct {
	tipo   string
	fechas []string
}

func (f filtros) request() dto.DashboardRequest {
	return dto.DashboardRequest{TipoDocumento: f.tipo, Fechas: f.fechas}
}

// services casos de uso armados desde la configuración del entorno.
type services struct {
	dashboard *analytics.DashboardUseCase
	export    *analytics.ExportUseCase
	close     func()
}

// buildServices se reemplaza en tests.
var buildServices = func(logLevel string) (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logLevel == "" {
		logLevel = cfg.App.LogLevel
	}
	// Los logs van a stderr para no mezclarse con el resumen.
	log := logger.New(logger.Config{Env: "development", Level: logLevel, Output: os.Stderr})

	provider := postgres.NewProvider(cfg.DB, cfg.Dashboard.Table, log.Component("postgres"))
	dashboard := analytics.NewDashboardUseCase(provider, analytics.NewLoader(log.Component("loader")),
		analytics.DashboardConfig{
			TopClientes:  cfg.Dashboard.TopClientes,
			Moneda:       cfg.Dashboard.Moneda,
			QueryTimeout: cfg.Dashboard.QueryTimeout,
		}, log.Component("dashboard"))
	export := analytics.NewExportUseCase(dashboard, infrapdf.NewMarotoReportGenerator(), infraxlsx.NewExcelizeExporter())

	return &services{dashboard: dashboard, export: export, close: provider.Close}, nil
}

func newRootCmd() *cobra.Command {
	var (
		f        filtros
		logLevel string
	)

	root := &cobra.Command{
		Use:   "ventasctl",
		Short: "Tablero de ventas desde la terminal",
		Long: `ventasctl lee el historial de numeración (facturas y boletas) de la base del
facturador, aplica los filtros y muestra el resumen o exporta el resultado.

La conexión se configura con las mismas variables que el servicio HTTP
(DATABASE_URL o DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE)
y se puede poner en un archivo .env.`,
		Example: `  # Resumen de todas las ventas
  ventasctl resumen

  # Facturas de enero
  ventasctl resumen --tipo Factura --fecha 2024-01-01 --fecha 2024-01-31

  # Exportar el detalle de boletas a Excel
  ventasctl exportar --tipo Boleta --formato xlsx --salida boletas.xlsx`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&f.tipo, "tipo", analytics.TodosLosTipos, "Tipo de documento: Todos, Factura o Boleta")
	root.PersistentFlags().StringArrayVar(&f.fechas, "fecha", nil, "Extremo del rango YYYY-MM-DD (repetir dos veces: inicio y fin)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Nivel de log (default LOG_LEVEL)")

	root.AddCommand(newResumenCmd(&f, &logLevel), newExportarCmd(&f, &logLevel))
	return root
}

// printAlertas escribe las alertas de la pasada; devuelve true si hubo alguna de nivel error.
func printAlertas(w io.Writer, as []alerts.Alert) bool {
	hasErr := false
	for _, a := range as {
		prefix := "aviso"
		if a.Nivel == alerts.NivelError {
			prefix = "error"
			hasErr = true
		}
		fmt.Fprintf(w, "%s: %s\n", prefix, a.Mensaje)
	}
	return hasErr
}
