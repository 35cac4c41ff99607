package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/analisis-ventas/internal/application/alerts"
)

// ── Query parameters ──────────────────────────────────────────────────────────

// DashboardRequest filtros de GET /api/ventas/dashboard (y exportaciones).
// Fechas se envía repetido: ?fecha=2024-01-01&fecha=2024-01-31. Solo se aplica
// si llegan exactamente dos.
type DashboardRequest struct {
	TipoDocumento string   `query:"tipo_documento"` // "Todos" (default), "Factura", "Boleta"
	Fechas        []string `query:"fecha"`          // YYYY-MM-DD
}

// DetalleRequest filtros + paginación de GET /api/ventas/detalle.
type DetalleRequest struct {
	DashboardRequest
	PageRequest
}

// ── Respuesta del tablero ────────────────────────────────────────────────────

// DashboardDTO respuesta completa de una pasada del tablero.
// Si SinDatos es true, solo Filtros (parcial) y Alertas vienen informados.
type DashboardDTO struct {
	PasadaID         string                  `json:"pasada_id"`
	SinDatos         bool                    `json:"sin_datos"`
	Filtros          FiltrosDTO              `json:"filtros"`
	Resumen          *ResumenDTO             `json:"resumen,omitempty"`
	VentasPorDia     []VentaDiariaDTO        `json:"ventas_por_dia"`
	PorTipoDocumento []TipoDocumentoStatsDTO `json:"por_tipo_documento"`
	TopClientes      []ClienteDTO            `json:"top_clientes"`
	Detalle          []VentaDTO              `json:"detalle"`
	Alertas          []alerts.Alert          `json:"alertas"`
}

// FiltrosDTO opciones disponibles y selección aplicada.
type FiltrosDTO struct {
	TiposDocumento   []string `json:"tipos_documento"` // "Todos" + etiquetas presentes, ordenadas
	FechaMin         string   `json:"fecha_min,omitempty"`
	FechaMax         string   `json:"fecha_max,omitempty"`
	TipoSeleccionado string   `json:"tipo_seleccionado"`
	RangoAplicado    []string `json:"rango_aplicado,omitempty"` // vacío si el filtro de fechas no se aplicó
}

// ResumenDTO métricas generales del conjunto filtrado.
type ResumenDTO struct {
	TotalVentas      decimal.Decimal `json:"total_ventas"`
	Transacciones    int             `json:"transacciones"`
	PromedioVenta    decimal.Decimal `json:"promedio_venta"`
	TotalVentasTexto string          `json:"total_ventas_texto"`   // "S/. 1,234.56"
	PromedioTexto    string          `json:"promedio_venta_texto"` // "S/. 61.73"
}

// VentaDiariaDTO punto de la serie de ventas por día.
type VentaDiariaDTO struct {
	Fecha string          `json:"fecha"` // YYYY-MM-DD
	Total decimal.Decimal `json:"total"`
}

// TipoDocumentoStatsDTO estadísticas por tipo de documento (torta y barras).
type TipoDocumentoStatsDTO struct {
	TipoDocumento string          `json:"tipo_documento"`
	TotalVentas   decimal.Decimal `json:"total_ventas"`
	PromedioVenta decimal.Decimal `json:"promedio_venta"`
	Cantidad      int             `json:"cantidad"`
	ValorVenta    decimal.Decimal `json:"valor_venta"`
}

// ClienteDTO entrada del ranking de clientes por monto vendido.
type ClienteDTO struct {
	RazonSocial string          `json:"razon_social"`
	RUCCliente  string          `json:"ruc_cliente"`
	Total       decimal.Decimal `json:"total"`
	TotalTexto  string          `json:"total_texto"`
}

// VentaDTO fila de la tabla de detalle.
type VentaDTO struct {
	ID                  string              `json:"id"`
	Serie               string              `json:"serie"`
	Correlativo         string              `json:"correlativo"`
	FechaEmision        string              `json:"fecha_emision"`
	FechaRegistro       string              `json:"fecha_registro"`
	RazonSocial         string              `json:"razon_social"`
	RUCCliente          string              `json:"ruc_cliente"`
	Direccion           string              `json:"direccion"`
	TipoDocumento       *string             `json:"tipo_documento"` // null si el código no está mapeado
	CodigoTipoDocumento string              `json:"codigo_tipo_documento"`
	TipoMoneda          string              `json:"tipo_moneda"`
	Subtotal            decimal.NullDecimal `json:"subtotal"`
	IGV                 decimal.NullDecimal `json:"igv"`
	ValorVenta          decimal.NullDecimal `json:"valor_venta"`
	Total               decimal.NullDecimal `json:"total"`
}

// DetalleDTO respuesta paginada de GET /api/ventas/detalle.
type DetalleDTO struct {
	PasadaID string         `json:"pasada_id"`
	Items    []VentaDTO     `json:"items"`
	Page     PageResponse   `json:"page"`
	Alertas  []alerts.Alert `json:"alertas"`
}
