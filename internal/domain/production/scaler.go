package production

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ScalingFactor calcula el factor de escalado de un batch:
//  1. override explícito positivo del batch, si existe;
//  2. inputMass / masa base de la receta, si la masa base es positiva;
//  3. 1 como último recurso.
//
// Un factor resultante no positivo es un error de validación, nunca se
// ajusta en silencio.
func ScalingFactor(inputMassGrams, recipeBaseMassGrams, override decimal.Decimal) (decimal.Decimal, error) {
	factor := decimal.NewFromInt(1)
	switch {
	case override.GreaterThan(decimal.Zero):
		factor = override
	case recipeBaseMassGrams.GreaterThan(decimal.Zero):
		factor = inputMassGrams.Div(recipeBaseMassGrams)
	}
	if !factor.GreaterThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidScaling
	}
	return factor, nil
}

// ScaleIngredient calcula la cantidad objetivo de un ingrediente no-cura:
// cantidad de receta × factor, en la unidad declarada del ingrediente, y la
// convierte a la unidad de presentación pedida por el caller.
func ScaleIngredient(ing *entity.RecipeIngredient, factor decimal.Decimal, displayUnit string) decimal.Decimal {
	target := ing.Quantity.Mul(factor)
	if displayUnit == "" || displayUnit == ing.Unit {
		return target
	}
	return ConvertUnit(target, ing.Unit, displayUnit)
}
