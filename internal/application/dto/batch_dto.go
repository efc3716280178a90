package dto

import "github.com/shopspring/decimal"

// CreateBatchRequest abre un batch de producción sobre una receta.
type CreateBatchRequest struct {
	RecipeID      string          `json:"recipe_id"`
	InputMass     decimal.Decimal `json:"input_mass"`
	InputMassUnit string          `json:"input_mass_unit"` // g o kg
	ScalingFactor decimal.Decimal `json:"scaling_factor"`  // override; cero = calcular
	Notes         string          `json:"notes"`
}

// MeasurementRequest registra la cantidad realmente pesada de un ingrediente.
type MeasurementRequest struct {
	MaterialID       string          `json:"material_id"`
	ActualAmount     decimal.Decimal `json:"actual_amount"`
	Unit             string          `json:"unit"`
	TolerancePercent decimal.Decimal `json:"tolerance_percentage"` // override opcional
}

// AllocateRequest asigna stock de un material al batch (consumo FIFO).
type AllocateRequest struct {
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reference  string          `json:"reference"`
}

// ReleaseRequest veredicto de liberación de un batch completado.
type ReleaseRequest struct {
	ReleaseStatus string `json:"release_status"` // approved o hold
}
