package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/analisis-ventas/internal/application/alerts"
	"github.com/jhoicas/analisis-ventas/internal/application/dto"
	"github.com/jhoicas/analisis-ventas/internal/domain"
)

// Formato de exportación.
type Formato string

const (
	FormatoPDF  Formato = "pdf"
	FormatoXLSX Formato = "xlsx"
)

// ReportGenerator genera el reporte imprimible del tablero (PDF).
type ReportGenerator interface {
	GenerateSalesReport(ctx context.Context, report *dto.DashboardDTO, moneda string) ([]byte, error)
}

// DetailExporter exporta la tabla de detalle a hoja de cálculo.
type DetailExporter interface {
	ExportDetail(ctx context.Context, report *dto.DashboardDTO) ([]byte, error)
}

// Exportacion archivo listo para descargar.
type Exportacion struct {
	Contenido     []byte
	ContentType   string
	NombreArchivo string
	Alertas       []alerts.Alert
}

// ExportUseCase produce el tablero filtrado como PDF o XLSX.
type ExportUseCase struct {
	dashboard *DashboardUseCase
	pdf       ReportGenerator
	xlsx      DetailExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(dashboard *DashboardUseCase, pdf ReportGenerator, xlsx DetailExporter) *ExportUseCase {
	return &ExportUseCase{dashboard: dashboard, pdf: pdf, xlsx: xlsx}
}

// Exportar ejecuta una pasada y genera el archivo en el formato pedido.
// Devuelve domain.ErrSinDatos si el conjunto filtrado quedó vacío; las alertas de
// la pasada se incluyen en el error para que el llamador las muestre.
func (uc *ExportUseCase) Exportar(ctx context.Context, formato Formato, req dto.DashboardRequest) (*Exportacion, error) {
	if formato != FormatoPDF && formato != FormatoXLSX {
		return nil, fmt.Errorf("%w: %q", domain.ErrFormatoExportacion, formato)
	}

	report := uc.dashboard.GetDashboard(ctx, req)
	if report.Resumen == nil {
		return &Exportacion{Alertas: report.Alertas}, domain.ErrSinDatos
	}

	nombre := fmt.Sprintf("ventas_%s.%s", time.Now().Format("20060102_150405"), formato)
	switch formato {
	case FormatoPDF:
		b, err := uc.pdf.GenerateSalesReport(ctx, report, uc.dashboard.Moneda())
		if err != nil {
			return nil, fmt.Errorf("exportar pdf: %w", err)
		}
		return &Exportacion{Contenido: b, ContentType: "application/pdf", NombreArchivo: nombre, Alertas: report.Alertas}, nil
	default:
		b, err := uc.xlsx.ExportDetail(ctx, report)
		if err != nil {
			return nil, fmt.Errorf("exportar xlsx: %w", err)
		}
		return &Exportacion{
			Contenido:     b,
			ContentType:   "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			NombreArchivo: nombre,
			Alertas:       report.Alertas,
		}, nil
	}
}
