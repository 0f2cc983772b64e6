package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merchanthaus/crm-api/pkg/logger"
)

// Cada línea de log en production debe ser JSON con el campo service, para
// poder filtrar esta API en la agregación de logs.
func TestLogger_EstampaServiceEnCadaLinea(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{
		Env:     "production",
		Level:   "info",
		Service: "pipeline-crm",
		Out:     &buf,
	})

	log.Info().Str("evento", "arranque").Msg("iniciando")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "en production cada línea debe ser JSON")
	assert.Equal(t, "pipeline-crm", line["service"])
	assert.Equal(t, "arranque", line["evento"])
	assert.Equal(t, "iniciando", line["message"])
	assert.Contains(t, line, "time")
}

func TestLogger_NivelFiltraEventosMenores(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{
		Env:     "production",
		Level:   "warn",
		Service: "pipeline-crm",
		Out:     &buf,
	})

	log.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len(), "info por debajo del nivel warn debe descartarse")

	log.Warn().Msg("sí debe salir")
	assert.NotZero(t, buf.Len())
}

func TestLogger_SinServiceNoAgregaCampoVacio(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Info().Msg("x")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.NotContains(t, line, "service")
}
