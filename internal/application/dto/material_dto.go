package dto

// CreateMaterialRequest alta de material.
type CreateMaterialRequest struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	CanonicalUnit string `json:"canonical_unit"` // g, kg, ml, l, unit
	Notes         string `json:"notes"`
}

// UpdateMaterialRequest edición de metadatos del material.
type UpdateMaterialRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}
