package production_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/production"
)

func TestScalingFactor_OverrideGana(t *testing.T) {
	factor, err := production.ScalingFactor(
		decimal.NewFromInt(2000), decimal.NewFromInt(1000), decimal.NewFromFloat(3.5))
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.NewFromFloat(3.5)),
		"El override explícito debe ganar sobre el cálculo input/base")
}

func TestScalingFactor_InputSobreBase(t *testing.T) {
	factor, err := production.ScalingFactor(
		decimal.NewFromInt(2000), decimal.NewFromInt(1000), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.NewFromInt(2)),
		"2000 g sobre base 1000 g debe dar factor 2, obtenido %s", factor)
}

func TestScalingFactor_SinBaseNiOverrideEsUno(t *testing.T) {
	factor, err := production.ScalingFactor(
		decimal.NewFromInt(500), decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.NewFromInt(1)),
		"Sin base ni override el factor es 1")
}

func TestScalingFactor_FactorCeroEsError(t *testing.T) {
	// input 0 sobre base positiva produce factor 0: error, nunca se ajusta.
	_, err := production.ScalingFactor(decimal.Zero, decimal.NewFromInt(1000), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidScaling,
		"Un factor no positivo debe rechazarse con ErrInvalidScaling")
}

func TestScalingFactor_OverrideNegativoSeIgnora(t *testing.T) {
	factor, err := production.ScalingFactor(
		decimal.NewFromInt(1500), decimal.NewFromInt(1000), decimal.NewFromInt(-2))
	require.NoError(t, err)
	assert.True(t, factor.Equal(decimal.NewFromFloat(1.5)),
		"Un override no positivo no cuenta: cae al cálculo input/base")
}

// TestScaleIngredient_Linealidad verifica que el objetivo escala linealmente
// con el factor: 50 g con factor 2 son 100 g.
func TestScaleIngredient_Linealidad(t *testing.T) {
	ing := &entity.RecipeIngredient{
		Quantity: decimal.NewFromInt(50),
		Unit:     entity.UnitGrams,
	}
	got := production.ScaleIngredient(ing, decimal.NewFromInt(2), "")
	assert.True(t, got.Equal(decimal.NewFromInt(100)),
		"50 g con factor 2 deben ser 100 g, obtenido %s", got)
}

func TestScaleIngredient_ConversionAPresentacion(t *testing.T) {
	ing := &entity.RecipeIngredient{
		Quantity: decimal.NewFromInt(500),
		Unit:     entity.UnitGrams,
	}
	got := production.ScaleIngredient(ing, decimal.NewFromInt(4), entity.UnitKilograms)
	assert.True(t, got.Equal(decimal.NewFromInt(2)),
		"500 g × 4 presentados en kg deben ser 2 kg, obtenido %s", got)
}

func TestFirstPositive_PrimerPositivoGana(t *testing.T) {
	got := production.FirstPositive(decimal.Zero, decimal.NewFromInt(-3), decimal.NewFromInt(7), decimal.NewFromInt(9))
	assert.True(t, got.Equal(decimal.NewFromInt(7)),
		"Debe devolver el primer candidato estrictamente positivo")
}

func TestFirstPositive_SinPositivosEsCero(t *testing.T) {
	got := production.FirstPositive(decimal.Zero, decimal.NewFromInt(-1))
	assert.True(t, got.IsZero(), "Sin candidatos positivos el resultado es cero")
}
