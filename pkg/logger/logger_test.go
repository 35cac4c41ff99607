package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Output: &buf})

	l.Info().Str("tabla", "numeracion_historial").Msg("datos cargados")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "datos cargados", entry["message"])
	assert.Equal(t, "numeracion_historial", entry["tabla"])
	assert.Contains(t, entry, "time")
}

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Output: &buf})

	l.Info().Msg("no debe aparecer")
	assert.Zero(t, buf.Len())

	c := l.Component("alerts")
	c.Debug().Msg("tampoco")
	assert.Zero(t, buf.Len())

	c.Warn().Msg("sí aparece")
	assert.NotZero(t, buf.Len())

	buf.Reset()
	l.Error().Msg("también")
	assert.NotZero(t, buf.Len())
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Output: &buf})

	c := l.Component("loader")
	c.Info().Msg("hola")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loader", entry["component"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
}
