// Package sunat contiene los catálogos SUNAT (Perú) que usa el tablero de ventas.
package sunat

// =============================================================================
// Catálogo 01 - Código de tipo de documento
// Solo factura y boleta tienen etiqueta en el tablero; el resto (notas de crédito,
// débito, guías) se muestra sin etiqueta pero no se descarta.
// =============================================================================

const (
	TipoDocumentoFactura = "01" // Factura electrónica
	TipoDocumentoBoleta  = "03" // Boleta de venta electrónica
)

// Etiquetas legibles del tipo de documento.
const (
	EtiquetaFactura = "Factura"
	EtiquetaBoleta  = "Boleta"
)

var etiquetasTipoDocumento = map[string]string{
	TipoDocumentoFactura: EtiquetaFactura,
	TipoDocumentoBoleta:  EtiquetaBoleta,
}

// EtiquetaTipoDocumento devuelve la etiqueta del código de tipo de documento.
// ok=false si el código no está en el catálogo; nunca es un error.
func EtiquetaTipoDocumento(codigo string) (etiqueta string, ok bool) {
	etiqueta, ok = etiquetasTipoDocumento[codigo]
	return etiqueta, ok
}

// =============================================================================
// Catálogo 02 - Códigos de tipo de moneda (ISO 4217), uso frecuente
// =============================================================================

const (
	MonedaSoles   = "PEN" // Sol
	MonedaDolares = "USD" // Dólar americano
)

var simbolosMoneda = map[string]string{
	MonedaSoles:   "S/.",
	MonedaDolares: "US$",
}

// SimboloMoneda devuelve el símbolo a mostrar para el código de moneda.
// Códigos desconocidos se devuelven tal cual (tipo_moneda no se valida).
func SimboloMoneda(codigo string) string {
	if s, ok := simbolosMoneda[codigo]; ok {
		return s
	}
	return codigo
}
