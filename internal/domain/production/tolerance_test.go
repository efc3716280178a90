package production_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Produccion-api/internal/domain/production"
)

func TestEvaluateTolerance_DentroDeTolerancia(t *testing.T) {
	// 104 g contra objetivo 100 g con 5%: desviación 4%, en tolerancia.
	result := production.EvaluateTolerance(
		decimal.NewFromInt(104), decimal.NewFromInt(100), decimal.NewFromInt(5))
	assert.True(t, result.InTolerance, "4% de desviación con tolerancia 5% debe pasar")
	assert.True(t, result.DiffPercent.Equal(decimal.NewFromInt(4)),
		"La desviación debe ser 4%%, obtenido %s", result.DiffPercent)
}

// El límite es inclusivo: exactamente 5% de desviación sigue en tolerancia.
func TestEvaluateTolerance_LimiteInclusivo(t *testing.T) {
	result := production.EvaluateTolerance(
		decimal.NewFromInt(105), decimal.NewFromInt(100), decimal.NewFromInt(5))
	assert.True(t, result.InTolerance, "Desviación exactamente igual a la tolerancia debe pasar")
}

func TestEvaluateTolerance_FueraDeTolerancia(t *testing.T) {
	result := production.EvaluateTolerance(
		decimal.NewFromFloat(105.1), decimal.NewFromInt(100), decimal.NewFromInt(5))
	assert.False(t, result.InTolerance, "5.1% de desviación con tolerancia 5% debe fallar")
}

func TestEvaluateTolerance_DeficitTambienCuenta(t *testing.T) {
	result := production.EvaluateTolerance(
		decimal.NewFromInt(94), decimal.NewFromInt(100), decimal.NewFromInt(5))
	assert.False(t, result.InTolerance, "La desviación es absoluta: -6% también falla")
}

// Con objetivo no positivo la desviación se fuerza a cero y el veredicto es
// "en tolerancia", cualquiera sea la medición. Caso degenerado documentado.
func TestEvaluateTolerance_ObjetivoCero(t *testing.T) {
	result := production.EvaluateTolerance(
		decimal.NewFromInt(50), decimal.Zero, decimal.NewFromInt(5))
	assert.True(t, result.InTolerance)
	assert.True(t, result.DiffPercent.IsZero(), "Con objetivo cero la desviación reportada es cero")
}

func TestResolveTolerance_CadenaDePrioridad(t *testing.T) {
	// override positivo gana
	got := production.ResolveTolerance(decimal.NewFromInt(3), decimal.NewFromInt(8))
	assert.True(t, got.Equal(decimal.NewFromInt(8)), "El override del caller tiene prioridad")

	// sin override cae a la del ingrediente
	got = production.ResolveTolerance(decimal.NewFromInt(3), decimal.Zero)
	assert.True(t, got.Equal(decimal.NewFromInt(3)), "Sin override aplica la del ingrediente")

	// sin ninguna, default 5%
	got = production.ResolveTolerance(decimal.Zero, decimal.Zero)
	assert.True(t, got.Equal(decimal.NewFromInt(5)), "El default es 5%")
}
