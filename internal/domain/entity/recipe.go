package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de agente de curado soportados (sales de cura con nitrito de sodio).
// Cada agente tiene una fracción activa de nitrito distinta.
const (
	CureTypePragueNo1   = "prague_1"     // sal de cura americana, 6.25% nitrito de sodio
	CureTypeNitriteSalt = "nitrite_salt" // sal nitrificada europea, 0.5% nitrito de sodio
)

// Recipe es la fórmula maestra de un producto: masa base de referencia y la
// lista ordenada de ingredientes con sus cantidades para esa masa base.
type Recipe struct {
	ID                string
	Name              string
	Description       string
	BaseReferenceMass decimal.Decimal // en gramos-equivalente
	Ingredients       []*RecipeIngredient
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RecipeIngredient liga un material a una receta con su cantidad para la masa
// base. TolerancePercentage por defecto es 5 si no se configura. IsCure marca
// sales de cura: su cantidad objetivo se calcula por ppm, no por escalado.
type RecipeIngredient struct {
	ID                  string
	RecipeID            string
	MaterialID          string
	Quantity            decimal.Decimal
	Unit                string
	TolerancePercentage decimal.Decimal
	IsCure              bool
	CureType            string // prague_1, prague_2; vacío si no es cura
	TargetPpm           decimal.Decimal
	IsCritical          bool
	DisplayOrder        int
}
