package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/analisis-ventas/internal/application/analytics"
	"github.com/jhoicas/analisis-ventas/internal/application/dto"
	"github.com/jhoicas/analisis-ventas/internal/domain"
)

// VentasHandler maneja los endpoints del tablero de ventas.
type VentasHandler struct {
	dashboard *analytics.DashboardUseCase
	export    *analytics.ExportUseCase
}

// NewVentasHandler construye el handler.
func NewVentasHandler(dashboard *analytics.DashboardUseCase, export *analytics.ExportUseCase) *VentasHandler {
	return &VentasHandler{dashboard: dashboard, export: export}
}

// GetDashboard godoc
// @Summary      Tablero de ventas
// @Description  Ejecuta una pasada completa: carga el historial, aplica los filtros y devuelve
//               resumen, ventas por día, estadísticas por tipo, top de clientes y detalle.
//               Los fallos de conexión o de filtrado no son errores HTTP: vuelven en "alertas".
// @Tags         ventas
// @Produce      json
// @Param        tipo_documento  query  string  false  "Todos (default), Factura o Boleta"
// @Param        fecha           query  []string  false  "Extremos del rango YYYY-MM-DD; se aplica solo con dos valores"  collectionFormat(multi)
// @Success      200  {object}  dto.DashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas/dashboard [get]
func (h *VentasHandler) GetDashboard(c *fiber.Ctx) error {
	var req dto.DashboardRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	return c.JSON(h.dashboard.GetDashboard(c.Context(), req))
}

// GetDetalle godoc
// @Summary      Detalle de ventas paginado
// @Description  Filas del conjunto filtrado ordenadas por fecha de emisión descendente.
// @Tags         ventas
// @Produce      json
// @Param        tipo_documento  query  string  false  "Todos (default), Factura o Boleta"
// @Param        fecha           query  []string  false  "Extremos del rango YYYY-MM-DD"  collectionFormat(multi)
// @Param        limit           query  int     false  "Tamaño de página (default 100, max 1000)"
// @Param        offset          query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.DetalleDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ventas/detalle [get]
func (h *VentasHandler) GetDetalle(c *fiber.Ctx) error {
	var req dto.DetalleRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	return c.JSON(h.dashboard.GetDetalle(c.Context(), req))
}

// GetReportePDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         ventas
// @Produce      application/pdf
// @Param        tipo_documento  query  string  false  "Todos (default), Factura o Boleta"
// @Param        fecha           query  []string  false  "Extremos del rango YYYY-MM-DD"  collectionFormat(multi)
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ventas/reporte.pdf [get]
func (h *VentasHandler) GetReportePDF(c *fiber.Ctx) error {
	return h.exportar(c, analytics.FormatoPDF)
}

// GetDetalleXLSX godoc
// @Summary      Detalle de ventas en Excel
// @Tags         ventas
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        tipo_documento  query  string  false  "Todos (default), Factura o Boleta"
// @Param        fecha           query  []string  false  "Extremos del rango YYYY-MM-DD"  collectionFormat(multi)
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ventas/detalle.xlsx [get]
func (h *VentasHandler) GetDetalleXLSX(c *fiber.Ctx) error {
	return h.exportar(c, analytics.FormatoXLSX)
}

func (h *VentasHandler) exportar(c *fiber.Ctx, formato analytics.Formato) error {
	var req dto.DashboardRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}

	exp, err := h.export.Exportar(c.Context(), formato, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSinDatos):
			msg := err.Error()
			if exp != nil && len(exp.Alertas) > 0 {
				msg = exp.Alertas[len(exp.Alertas)-1].Mensaje
			}
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SIN_DATOS", Message: msg})
		case errors.Is(err, domain.ErrFormatoExportacion):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}

	c.Set(fiber.HeaderContentType, exp.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exp.NombreArchivo))
	return c.Send(exp.Contenido)
}
