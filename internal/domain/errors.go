package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrSinDatos           = errors.New("no hay datos que coincidan con los filtros seleccionados")
	ErrFormatoExportacion = errors.New("formato de exportación no soportado")
)
