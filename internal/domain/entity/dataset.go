package entity

import "time"

// Dataset conjunto tabular de ventas limpias de una pasada del tablero.
// Es inmutable por convención: los filtros devuelven un Dataset nuevo.
type Dataset struct {
	ventas []Venta
}

// NewDataset envuelve las filas dadas (no las copia).
func NewDataset(ventas []Venta) *Dataset {
	return &Dataset{ventas: ventas}
}

// EmptyDataset devuelve un Dataset sin filas.
func EmptyDataset() *Dataset {
	return &Dataset{ventas: []Venta{}}
}

// Ventas devuelve las filas en el orden de carga.
func (d *Dataset) Ventas() []Venta {
	if d == nil {
		return nil
	}
	return d.ventas
}

// Len cantidad de filas.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ventas)
}

// Empty true si no hay filas.
func (d *Dataset) Empty() bool { return d.Len() == 0 }

// Where devuelve un Dataset nuevo con las filas que cumplen keep.
func (d *Dataset) Where(keep func(Venta) bool) *Dataset {
	out := make([]Venta, 0, d.Len())
	for _, v := range d.Ventas() {
		if keep(v) {
			out = append(out, v)
		}
	}
	return NewDataset(out)
}

// RangoFechas devuelve la fecha de emisión mínima y máxima; ok=false si está vacío.
func (d *Dataset) RangoFechas() (minFecha, maxFecha time.Time, ok bool) {
	for i, v := range d.Ventas() {
		if i == 0 || v.FechaEmision.Before(minFecha) {
			minFecha = v.FechaEmision
		}
		if i == 0 || v.FechaEmision.After(maxFecha) {
			maxFecha = v.FechaEmision
		}
	}
	return minFecha, maxFecha, !d.Empty()
}
