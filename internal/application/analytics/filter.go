package analytics

import (
	"fmt"
	"time"

	"github.com/jhoicas/analisis-ventas/internal/application/alerts"
	"github.com/jhoicas/analisis-ventas/internal/domain/entity"
	"github.com/jhoicas/analisis-ventas/pkg/fechas"
)

// TodosLosTipos valor centinela del selector de tipo de documento: no filtra.
const TodosLosTipos = "Todos"

// MsgErrorFiltrarFechas prefijo de la alerta cuando el rango de fechas no se puede aplicar.
const MsgErrorFiltrarFechas = "Error al filtrar por fechas"

// Criterios selección del usuario para una pasada.
type Criterios struct {
	// TipoDocumento "Todos" (o vacío) no filtra; si no, se compara con la etiqueta mapeada.
	TipoDocumento string
	// Fechas extremos del rango inclusivo en YYYY-MM-DD. Solo se aplica con exactamente
	// dos valores; con cualquier otra cantidad el filtro de fechas se omite.
	Fechas []string
}

// AplicaTipo true si el criterio de tipo filtra algo.
func (c Criterios) AplicaTipo() bool {
	return c.TipoDocumento != "" && c.TipoDocumento != TodosLosTipos
}

// AplicaFechas true si el criterio de fechas se evalúa.
func (c Criterios) AplicaFechas() bool {
	return len(c.Fechas) == 2
}

// Filtrar devuelve el subconjunto de ds que cumple todos los criterios activos.
// ds no se modifica. Si el rango de fechas no se puede evaluar se reporta en rep
// y el resultado es vacío (nunca el conjunto sin filtrar).
func Filtrar(ds *entity.Dataset, c Criterios, rep alerts.Reporter) *entity.Dataset {
	out := ds
	if c.AplicaTipo() {
		out = out.Where(func(v entity.Venta) bool {
			return v.TipoDocumento != nil && *v.TipoDocumento == c.TipoDocumento
		})
	}

	if c.AplicaFechas() {
		desde, hasta, err := parseRango(c.Fechas)
		if err != nil {
			rep.Error(MsgErrorFiltrarFechas, err)
			return entity.EmptyDataset()
		}
		out = out.Where(func(v entity.Venta) bool {
			return !v.FechaEmision.Before(desde) && !v.FechaEmision.After(hasta)
		})
	}

	if out == ds {
		// Sin criterios activos igual se devuelve un Dataset propio.
		out = ds.Where(func(entity.Venta) bool { return true })
	}
	return out
}

func parseRango(extremos []string) (desde, hasta time.Time, err error) {
	desde, err = fechas.ParseEstricta(extremos[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("inicio del rango: %w", err)
	}
	hasta, err = fechas.ParseEstricta(extremos[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fin del rango: %w", err)
	}
	return desde, hasta, nil
}
