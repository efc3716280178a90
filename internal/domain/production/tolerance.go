package production

import "github.com/shopspring/decimal"

// DefaultTolerancePercentage aplica cuando el ingrediente no configura una.
var DefaultTolerancePercentage = decimal.NewFromInt(5)

var hundred = decimal.NewFromInt(100)

// ToleranceResult es el veredicto de comparar una medición contra su objetivo.
type ToleranceResult struct {
	DiffPercent decimal.Decimal
	InTolerance bool
}

// EvaluateTolerance compara actual contra target con la tolerancia dada (en
// porcentaje). Con target <= 0 la desviación se fuerza a 0 y el resultado es
// "en tolerancia": caso degenerado heredado, señalado en DESIGN.md porque
// puede enmascarar un objetivo mal calculado. El límite es inclusivo:
// diffPercent == tolerancia sigue estando en tolerancia.
func EvaluateTolerance(actual, target, tolerancePercentage decimal.Decimal) ToleranceResult {
	diff := decimal.Zero
	if target.GreaterThan(decimal.Zero) {
		diff = actual.Sub(target).Abs().Div(target).Mul(hundred)
	}
	return ToleranceResult{
		DiffPercent: diff,
		InTolerance: diff.LessThanOrEqual(tolerancePercentage),
	}
}

// ResolveTolerance decide la tolerancia efectiva: override del caller si es
// positivo, luego la configurada en el ingrediente, luego el default de 5%.
func ResolveTolerance(ingredientTolerance, override decimal.Decimal) decimal.Decimal {
	return FirstPositive(override, ingredientTolerance, DefaultTolerancePercentage)
}
