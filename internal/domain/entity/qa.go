package entity

import (
	"encoding/json"
	"time"
)

// Etapas del pipeline de calidad, en orden fijo de producción.
const (
	StagePreparation = "preparation"
	StageMixing      = "mixing"
	StageMarination  = "marination"
	StageDrying      = "drying"
	StagePackaging   = "packaging"
	StageFinal       = "final"
)

// StageOrder es el orden canónico de etapas. Toda agregación lo recorre así.
var StageOrder = []string{
	StagePreparation,
	StageMixing,
	StageMarination,
	StageDrying,
	StagePackaging,
	StageFinal,
}

// Estados de un check de calidad de un batch.
const (
	CheckStatusPending     = "pending"
	CheckStatusPassed      = "passed"
	CheckStatusFailed      = "failed"
	CheckStatusSkipped     = "skipped"
	CheckStatusConditional = "conditional"
)

// Códigos de checkpoint con derivación especial de resultado.
const (
	CheckpointCodeCoreTemp = "core_temp" // temperatura interna con sondas
)

// QACheckpoint es la definición reutilizable de un punto de control: a qué
// etapa pertenece, si es obligatorio para completar el batch y si está activo.
type QACheckpoint struct {
	ID           string
	Code         string
	Name         string
	Description  string
	Stage        string
	Required     bool
	Active       bool
	DisplayOrder int
	CreatedAt    time.Time
}

// BatchQACheck es el resultado de un checkpoint para un batch concreto.
// Metadata es el payload específico de la etapa (lecturas de sondas, etc.);
// el modelo genérico lo trata como opaco y la interpretación por código de
// checkpoint vive en el paquete quality.
type BatchQACheck struct {
	ID           string
	BatchID      string
	CheckpointID string
	Status       string
	Metadata     json.RawMessage
	Notes        string
	CheckedAt    *time.Time
	CheckedBy    string
	UpdatedAt    time.Time
}
