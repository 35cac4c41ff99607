package sunat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/analisis-ventas/pkg/sunat"
)

func TestEtiquetaTipoDocumento_CodigosConocidos(t *testing.T) {
	etiqueta, ok := sunat.EtiquetaTipoDocumento("01")
	assert.True(t, ok)
	assert.Equal(t, "Factura", etiqueta)

	etiqueta, ok = sunat.EtiquetaTipoDocumento("03")
	assert.True(t, ok)
	assert.Equal(t, "Boleta", etiqueta)
}

func TestEtiquetaTipoDocumento_CodigosDesconocidosSinEtiqueta(t *testing.T) {
	for _, codigo := range []string{"07", "08", "1", "3", " 01", "", "Factura", "zz"} {
		etiqueta, ok := sunat.EtiquetaTipoDocumento(codigo)
		assert.False(t, ok, "código %q no debe tener etiqueta", codigo)
		assert.Empty(t, etiqueta)
	}
}

func TestSimboloMoneda(t *testing.T) {
	assert.Equal(t, "S/.", sunat.SimboloMoneda("PEN"))
	assert.Equal(t, "US$", sunat.SimboloMoneda("USD"))
	assert.Equal(t, "EUR", sunat.SimboloMoneda("EUR"))
}
