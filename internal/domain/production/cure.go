package production

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// Estados de seguridad del curado según ppm de nitrito alcanzado.
const (
	CureStatusLow  = "low"
	CureStatusOK   = "ok"
	CureStatusHigh = "high"
)

var million = decimal.NewFromInt(1_000_000)

// Fracción de nitrito activo por tipo de agente de curado. Son constantes del
// producto comercial, no configuración: cambiarlas cambia la dosis de un
// compuesto regulado.
var nitriteFractions = map[string]decimal.Decimal{
	entity.CureTypePragueNo1:   decimal.NewFromFloat(0.0625), // 6.25%
	entity.CureTypeNitriteSalt: decimal.NewFromFloat(0.005),  // 0.5%
}

// NitriteFraction devuelve la fracción activa del agente; cero si el tipo no
// se conoce (toda dosis calculada con ella será cero, nunca una dosis errada).
func NitriteFraction(cureType string) decimal.Decimal {
	if f, ok := nitriteFractions[cureType]; ok {
		return f
	}
	return decimal.Zero
}

// CureThresholds son los umbrales de ppm de nitrito {mín, objetivo, máx}.
// Vienen de configuración externa con estos defaults embebidos: una falla de
// lectura de configuración nunca bloquea el cálculo de dosis.
type CureThresholds struct {
	MinPpm    decimal.Decimal
	TargetPpm decimal.Decimal
	MaxPpm    decimal.Decimal
}

// DefaultCureThresholds umbrales por defecto: mín 110, objetivo 125, máx 125.
func DefaultCureThresholds() CureThresholds {
	return CureThresholds{
		MinPpm:    decimal.NewFromInt(110),
		TargetPpm: decimal.NewFromInt(125),
		MaxPpm:    decimal.NewFromInt(125),
	}
}

// RequiredCureGrams calcula los gramos de agente de curado necesarios para
// alcanzar targetPpm de nitrito en baseMassGrams de producto (masa SIN contar
// el agente mismo, que también suma masa al total):
//
//	requiredGrams = (targetPpm/1e6 * baseMass) / (fracción - targetPpm/1e6)
//
// Devuelve cero si baseMassGrams no es positiva o si el agente es demasiado
// diluido para alcanzar el objetivo (fracción <= targetPpm/1e6). Un cero aquí
// significa "dosis indefinida / no aplica", no "cero gramos es correcto";
// el caller distingue por las precondiciones, no por el valor devuelto.
func RequiredCureGrams(baseMassGrams decimal.Decimal, cureType string, targetPpm decimal.Decimal) decimal.Decimal {
	if !baseMassGrams.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	fraction := NitriteFraction(cureType)
	targetFraction := targetPpm.Div(million)
	if fraction.LessThanOrEqual(targetFraction) {
		return decimal.Zero
	}
	return targetFraction.Mul(baseMassGrams).Div(fraction.Sub(targetFraction))
}

// AchievedPpm calcula los ppm de nitrito realmente alcanzados con cureGrams de
// agente en totalMassGrams (masa base + masa del agente). Requiere ambos
// positivos; si no, devuelve cero (indefinido).
func AchievedPpm(cureGrams, totalMassGrams decimal.Decimal, cureType string) decimal.Decimal {
	if !cureGrams.GreaterThan(decimal.Zero) || !totalMassGrams.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return cureGrams.Mul(NitriteFraction(cureType)).Div(totalMassGrams).Mul(million)
}

// EvaluateCureStatus clasifica un ppm alcanzado contra los umbrales:
// ppm < mín → low, ppm > máx → high, en el resto ok (límites inclusivos).
func EvaluateCureStatus(ppm decimal.Decimal, t CureThresholds) string {
	switch {
	case ppm.LessThan(t.MinPpm):
		return CureStatusLow
	case ppm.GreaterThan(t.MaxPpm):
		return CureStatusHigh
	default:
		return CureStatusOK
	}
}

// CureBaseMass determina la masa base sobre la que se distribuye el agente de
// curado, como cadena de prioridad "primer valor positivo gana":
//  1. suma de ingredientes no-cura de clase masa ya escalados al batch;
//  2. masa de entrada cruda del batch en gramos;
//  3. masa base de la receta multiplicada por el factor de escalado.
func CureBaseMass(scaledNonCureMassSum, inputMassGrams, recipeBaseMassGrams, scalingFactor decimal.Decimal) decimal.Decimal {
	return FirstPositive(
		scaledNonCureMassSum,
		inputMassGrams,
		recipeBaseMassGrams.Mul(scalingFactor),
	)
}
