package analytics

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/analisis-ventas/internal/application/alerts"
	"github.com/jhoicas/analisis-ventas/internal/domain/entity"
	"github.com/jhoicas/analisis-ventas/internal/domain/repository"
	"github.com/jhoicas/analisis-ventas/pkg/fechas"
	"github.com/jhoicas/analisis-ventas/pkg/sunat"
)

// MsgErrorProcesar prefijo de la alerta cuando falla la consulta o la limpieza.
const MsgErrorProcesar = "Error al procesar datos"

// Loader carga el historial de numeración y lo deja listo para filtrar y agregar:
//   - descarta las filas cuya fecha_emision no se puede interpretar;
//   - reduce fecha_emision a fecha calendario;
//   - traduce el código de tipo de documento a "Factura"/"Boleta" (o nil).
type Loader struct {
	log zerolog.Logger
}

// NewLoader construye el Loader.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

// Load ejecuta la consulta y devuelve el Dataset limpio.
// src nil significa que no hay conexión: se devuelve vacío sin consultar.
// Cualquier fallo se reporta en rep y se devuelve vacío, nunca un resultado parcial.
func (l *Loader) Load(ctx context.Context, src repository.InvoiceHistoryReader, rep alerts.Reporter) *entity.Dataset {
	if src == nil {
		return entity.EmptyDataset()
	}

	crudas, err := src.ListInvoiceHistory(ctx)
	if err != nil {
		rep.Error(MsgErrorProcesar, err)
		return entity.EmptyDataset()
	}

	ventas := Limpiar(crudas)

	l.log.Debug().
		Int("filas_leidas", len(crudas)).
		Int("filas_validas", len(ventas)).
		Int("descartadas_por_fecha", len(crudas)-len(ventas)).
		Msg("historial cargado")

	return entity.NewDataset(ventas)
}

// Limpiar aplica la limpieza fila por fila conservando el orden de entrada.
// Una fecha no interpretable descarta la fila sin error; un código de tipo
// desconocido deja la etiqueta en nil sin descartarla.
func Limpiar(crudas []entity.VentaCruda) []entity.Venta {
	ventas := make([]entity.Venta, 0, len(crudas))
	for _, c := range crudas {
		fecha := fechas.ParseEmision(c.FechaEmision)
		if !fecha.Valida {
			continue
		}

		codigo := deref(c.TipoDocumento)
		var tipo *string
		if etiqueta, ok := sunat.EtiquetaTipoDocumento(codigo); ok {
			tipo = &etiqueta
		}

		ventas = append(ventas, entity.Venta{
			ID:                  c.ID,
			Correlativo:         deref(c.Correlativo),
			Serie:               deref(c.Serie),
			Direccion:           deref(c.Direccion),
			FechaEmision:        fecha.Fecha,
			FechaRegistro:       deref(c.FechaRegistro),
			IGV:                 c.IGV,
			Subtotal:            c.Subtotal,
			Total:               c.Total,
			ValorVenta:          c.ValorVenta,
			RazonSocial:         deref(c.RazonSocial),
			RUCCliente:          deref(c.RUCCliente),
			ClienteNulo:         c.RazonSocial == nil || c.RUCCliente == nil,
			TipoDocumento:       tipo,
			CodigoTipoDocumento: codigo,
			TipoMoneda:          deref(c.TipoMoneda),
		})
	}
	return ventas
}

func deref(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}
