package dto

import "github.com/shopspring/decimal"

// CreateRecipeRequest alta de receta con su lista ordenada de ingredientes.
type CreateRecipeRequest struct {
	Name              string                    `json:"name"`
	Description       string                    `json:"description"`
	BaseReferenceMass decimal.Decimal           `json:"base_reference_mass"` // gramos
	Ingredients       []RecipeIngredientRequest `json:"ingredients"`
}

// RecipeIngredientRequest un ingrediente de la receta. Para curas (is_cure)
// la cantidad objetivo se calcula por ppm; quantity puede venir en cero.
type RecipeIngredientRequest struct {
	MaterialID          string          `json:"material_id"`
	Quantity            decimal.Decimal `json:"quantity"`
	Unit                string          `json:"unit"`
	TolerancePercentage decimal.Decimal `json:"tolerance_percentage"`
	IsCure              bool            `json:"is_cure"`
	CureType            string          `json:"cure_type"`
	TargetPpm           decimal.Decimal `json:"target_ppm"`
	IsCritical          bool            `json:"is_critical"`
}
