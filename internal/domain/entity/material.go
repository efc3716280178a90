package entity

import "time"

// Clases de unidad canónica de un material.
const (
	UnitClassMass   = "mass"   // gramos, kilogramos
	UnitClassVolume = "volume" // mililitros, litros
	UnitClassCount  = "count"  // unidades
)

// Unidades de medida soportadas.
const (
	UnitGrams       = "g"
	UnitKilograms   = "kg"
	UnitMilliliters = "ml"
	UnitLiters      = "l"
	UnitUnits       = "unit"
)

// Material representa una materia prima o insumo (carne, sal, especias, empaque).
// La unidad canónica define la clase de medida de todos sus lotes.
type Material struct {
	ID            string
	Name          string
	Category      string // meat, spice, cure, casing, packaging...
	CanonicalUnit string // g, kg, ml, l, unit
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UnitClass devuelve la clase de medida de una unidad (mass, volume, count).
func UnitClass(unit string) string {
	switch unit {
	case UnitGrams, UnitKilograms:
		return UnitClassMass
	case UnitMilliliters, UnitLiters:
		return UnitClassVolume
	default:
		return UnitClassCount
	}
}
