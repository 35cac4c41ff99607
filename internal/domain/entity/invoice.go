package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaCruda es una fila de numeracion_historial tal como la devuelve la consulta.
// Los campos de texto nullable llegan como *string; los montos como NullDecimal.
type VentaCruda struct {
	ID            string
	Correlativo   *string
	Direccion     *string
	FechaEmision  *string // texto libre; se valida en el Loader
	FechaRegistro *string
	IGV           decimal.NullDecimal
	RazonSocial   *string
	RUCCliente    *string
	Serie         *string
	Subtotal      decimal.NullDecimal
	TipoDocumento *string // código SUNAT ("01", "03", ...)
	TipoMoneda    *string
	Total         decimal.NullDecimal
	ValorVenta    decimal.NullDecimal
}

// Venta es un documento emitido ya limpio: FechaEmision siempre es una fecha real
// (medianoche UTC) y TipoDocumento es "Factura", "Boleta" o nil si el código no se reconoce.
type Venta struct {
	ID                  string
	Correlativo         string
	Serie               string
	Direccion           string
	FechaEmision        time.Time
	FechaRegistro       string // sin validar
	IGV                 decimal.NullDecimal
	Subtotal            decimal.NullDecimal
	Total               decimal.NullDecimal
	ValorVenta          decimal.NullDecimal
	RazonSocial         string
	RUCCliente          string
	ClienteNulo         bool // razon_social o ruc_cliente llegó NULL
	TipoDocumento       *string
	CodigoTipoDocumento string
	TipoMoneda          string
}

// EtiquetaTipo devuelve la etiqueta del tipo de documento o "" si no está mapeado.
func (v Venta) EtiquetaTipo() string {
	if v.TipoDocumento == nil {
		return ""
	}
	return *v.TipoDocumento
}
