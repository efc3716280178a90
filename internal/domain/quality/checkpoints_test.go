package quality_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/quality"
)

func TestDeriveStatus_CoreTempTodasLasSondasPasan(t *testing.T) {
	meta := json.RawMessage(`{"probes":[
		{"probe":"A","temperature_c":"73.5","hold_minutes":"3"},
		{"probe":"B","temperature_c":"72.0","hold_minutes":"2"}
	]}`)
	status, err := quality.DeriveStatus(
		entity.CheckpointCodeCoreTemp, entity.CheckStatusPassed, meta, quality.DefaultCoreTempLimits())
	require.NoError(t, err)
	assert.Equal(t, entity.CheckStatusPassed, status,
		"Todas las sondas en o sobre los mínimos (72 °C / 2 min) deben pasar")
}

// Una sola sonda corta falla el checkpoint completo, aunque el operador haya
// reportado passed: el resultado se deriva del metadata, no del reporte.
func TestDeriveStatus_CoreTempUnaSondaCortaFalla(t *testing.T) {
	meta := json.RawMessage(`{"probes":[
		{"probe":"A","temperature_c":"74","hold_minutes":"3"},
		{"probe":"B","temperature_c":"71.9","hold_minutes":"3"}
	]}`)
	status, err := quality.DeriveStatus(
		entity.CheckpointCodeCoreTemp, entity.CheckStatusPassed, meta, quality.DefaultCoreTempLimits())
	require.NoError(t, err)
	assert.Equal(t, entity.CheckStatusFailed, status)
}

func TestDeriveStatus_CoreTempSostenimientoInsuficienteFalla(t *testing.T) {
	meta := json.RawMessage(`{"probes":[{"probe":"A","temperature_c":"80","hold_minutes":"1"}]}`)
	status, err := quality.DeriveStatus(
		entity.CheckpointCodeCoreTemp, entity.CheckStatusPassed, meta, quality.DefaultCoreTempLimits())
	require.NoError(t, err)
	assert.Equal(t, entity.CheckStatusFailed, status,
		"Temperatura alcanzada pero no sostenida debe fallar")
}

func TestDeriveStatus_CoreTempSinSondasFalla(t *testing.T) {
	meta := json.RawMessage(`{"probes":[]}`)
	status, err := quality.DeriveStatus(
		entity.CheckpointCodeCoreTemp, entity.CheckStatusPassed, meta, quality.DefaultCoreTempLimits())
	require.NoError(t, err)
	assert.Equal(t, entity.CheckStatusFailed, status, "Sin lecturas no hay evidencia: falla")
}

func TestDeriveStatus_CoreTempMetadataInvalidoEsError(t *testing.T) {
	meta := json.RawMessage(`{"probes": "no-es-lista"}`)
	_, err := quality.DeriveStatus(
		entity.CheckpointCodeCoreTemp, entity.CheckStatusPassed, meta, quality.DefaultCoreTempLimits())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Los códigos sin forma conocida respetan el estado reportado y tratan el
// metadata como opaco.
func TestDeriveStatus_CodigoGenericoRespetaReporte(t *testing.T) {
	meta := json.RawMessage(`{"cualquier":"cosa"}`)
	status, err := quality.DeriveStatus(
		"visual_check", entity.CheckStatusConditional, meta, quality.DefaultCoreTempLimits())
	require.NoError(t, err)
	assert.Equal(t, entity.CheckStatusConditional, status)
}

func TestParseCheckMetadata_TaggedUnion(t *testing.T) {
	meta, err := quality.ParseCheckMetadata(
		entity.CheckpointCodeCoreTemp,
		json.RawMessage(`{"probes":[{"probe":"A","temperature_c":"72","hold_minutes":"2"}]}`))
	require.NoError(t, err)
	core, ok := meta.(quality.CoreTempMetadata)
	require.True(t, ok, "core_temp debe decodificar a CoreTempMetadata")
	assert.Len(t, core.Probes, 1)

	opaque, err := quality.ParseCheckMetadata("otro", json.RawMessage(`{"x":1}`))
	require.NoError(t, err)
	_, ok = opaque.(quality.OpaqueMetadata)
	assert.True(t, ok, "Códigos sin forma conocida quedan como OpaqueMetadata")
}
