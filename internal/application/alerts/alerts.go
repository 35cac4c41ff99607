// Package alerts recoge los avisos visibles para el usuario durante una pasada del tablero.
//
// Ningún fallo de carga o filtrado se propaga como error: se reporta aquí y la pasada
// termina temprano con un conjunto vacío. El front muestra las alertas tal cual.
package alerts

import (
	"github.com/rs/zerolog"
)

// Nivel de severidad de una alerta.
type Nivel string

const (
	NivelError       Nivel = "error"
	NivelAdvertencia Nivel = "warning"
)

// Alert aviso para el usuario.
type Alert struct {
	Nivel   Nivel  `json:"nivel"`
	Mensaje string `json:"mensaje"`
}

// Reporter canal de reporte de errores de la pasada.
type Reporter interface {
	Error(msg string, err error)
	Warning(msg string)
}

// Collector implementa Reporter acumulando las alertas y registrándolas en el log.
// Una instancia por pasada; no es seguro para uso concurrente.
type Collector struct {
	log    zerolog.Logger
	alerts []Alert
}

var _ Reporter = (*Collector)(nil)

// NewCollector construye el colector con el logger de la pasada.
func NewCollector(log zerolog.Logger) *Collector {
	return &Collector{log: log, alerts: []Alert{}}
}

// Error agrega "msg: err" como alerta de error.
func (c *Collector) Error(msg string, err error) {
	text := msg
	if err != nil {
		text = msg + ": " + err.Error()
	}
	c.log.Error().Err(err).Msg(msg)
	c.alerts = append(c.alerts, Alert{Nivel: NivelError, Mensaje: text})
}

// Warning agrega una advertencia.
func (c *Collector) Warning(msg string) {
	c.log.Warn().Msg(msg)
	c.alerts = append(c.alerts, Alert{Nivel: NivelAdvertencia, Mensaje: msg})
}

// Alerts devuelve las alertas en orden de llegada.
func (c *Collector) Alerts() []Alert {
	return c.alerts
}

// HasErrors true si alguna alerta es de nivel error.
func (c *Collector) HasErrors() bool {
	for _, a := range c.alerts {
		if a.Nivel == NivelError {
			return true
		}
	}
	return false
}
