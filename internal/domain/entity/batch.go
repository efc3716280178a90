package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un batch de producción.
const (
	BatchStatusInProgress = "in_progress"
	BatchStatusCompleted  = "completed"
	BatchStatusCancelled  = "cancelled"
	BatchStatusReleased   = "released"
)

// Estados de liberación (posteriores a la producción).
const (
	ReleaseStatusApproved = "approved"
	ReleaseStatusRecalled = "recalled"
	ReleaseStatusHold     = "hold"
)

// Batch es una corrida de producción de una receta con una masa de entrada real
// (p. ej. peso de la carne). Las transiciones de estado son unidireccionales,
// salvo recall, que puede aplicarse después de released.
type Batch struct {
	ID             string
	Code           string // código visible del batch (etiqueta)
	RecipeID       string
	InputMass      decimal.Decimal // masa de entrada en la unidad declarada
	InputMassUnit  string          // g o kg
	ScalingFactor  decimal.Decimal // override explícito; cero = calcular
	Status         string
	ReleaseStatus  string // approved, recalled, hold; vacío hasta liberar
	ProductionDate time.Time
	CompletedAt    *time.Time
	ReleasedAt     *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CreatedBy      string
}

// BatchIngredientActual guarda, por material de un batch, el objetivo calculado
// y la medición real. No hay historial: cada medición sobreescribe la anterior
// (un valor vigente por material por batch). Los campos Cure* solo aplican a
// ingredientes de cura.
type BatchIngredientActual struct {
	ID                string
	BatchID           string
	MaterialID        string
	TargetAmount      decimal.Decimal
	ActualAmount      *decimal.Decimal // nil hasta que se mide
	Unit              string
	InTolerance       *bool           // nil hasta que se mide
	TolerancePercent  decimal.Decimal // tolerancia efectiva aplicada al medir; cero hasta entonces
	CureRequiredGrams decimal.Decimal
	CurePpm           decimal.Decimal
	CureStatus        string // low, ok, high; vacío si no es cura
	MeasuredAt        *time.Time
	MeasuredBy        string
	UpdatedAt         time.Time
}

// BatchLotUsage registra qué lote físico entró en qué batch y en qué cantidad
// (trazabilidad hacia atrás: de producto terminado a lote de proveedor).
type BatchLotUsage struct {
	ID         string
	BatchID    string
	LotID      string
	MaterialID string
	Quantity   decimal.Decimal
	CreatedAt  time.Time
}
