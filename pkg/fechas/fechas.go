// Package fechas interpreta las fechas de emisión tal como llegan del facturador
// (texto libre: ISO, dd/mm, con hora, con zona) y las reduce a fecha calendario.
package fechas

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Layout formato canónico de fecha calendario (YYYY-MM-DD).
const Layout = "2006-01-02"

// Resultado es la fecha interpretada o la marca explícita de "sin valor".
// Fecha siempre está a medianoche UTC cuando Valida es true.
type Resultado struct {
	Fecha  time.Time
	Valida bool
}

// SinValor es el resultado de una fecha que no se pudo interpretar.
var SinValor = Resultado{}

// numericaConGuiones reconoce dd-mm-yyyy / mm-dd-yyyy (con hora opcional).
var numericaConGuiones = regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}`)

// ParseEmision interpreta un valor nullable de fecha_emision.
func ParseEmision(raw *string) Resultado {
	if raw == nil {
		return SinValor
	}
	return Parse(*raw)
}

// Parse interpreta s en cualquier formato reconocible y conserva solo la parte de fecha.
// Nunca devuelve error ni entra en pánico: lo no interpretable es SinValor.
func Parse(s string) (r Resultado) {
	// dateparse puede entrar en pánico con algunas entradas mal formadas.
	defer func() {
		if recover() != nil {
			r = SinValor
		}
	}()

	s = strings.TrimSpace(s)
	if s == "" {
		return SinValor
	}
	t, err := interpretar(s)
	if err != nil && numericaConGuiones.MatchString(s) {
		t, err = interpretar(strings.Replace(strings.Replace(s, "-", "/", 1), "-", "/", 1))
	}
	if err != nil {
		return SinValor
	}
	return Resultado{Fecha: Truncar(t), Valida: true}
}

// interpretar lee mes primero y, si el mes sale fuera de rango, reintenta día primero.
func interpretar(s string) (time.Time, error) {
	return dateparse.ParseIn(s, time.UTC, dateparse.RetryAmbiguousDateWithSwap(true))
}

// Truncar descarta la hora conservando el día tal como fue escrito (sin convertir de zona).
func Truncar(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseEstricta interpreta un extremo de rango en formato YYYY-MM-DD.
func ParseEstricta(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q inválida, se espera YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// Formatear devuelve la fecha en formato YYYY-MM-DD.
func Formatear(t time.Time) string {
	return t.Format(Layout)
}
