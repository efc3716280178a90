package entity

import "time"

// Tipos de frecuencia de una obligación de cumplimiento.
const (
	FrequencyWeekly        = "weekly"
	FrequencyFortnightly   = "fortnightly"
	FrequencyMonthly       = "monthly"
	FrequencyBatchInterval = "batch_interval"
	FrequencyCustom        = "custom"
)

// Estados derivados de una tarea de cumplimiento.
const (
	ComplianceNotStarted = "not_started"
	ComplianceOnTrack    = "on_track"
	ComplianceDueSoon    = "due_soon"
	ComplianceOverdue    = "overdue"
	ComplianceBatchDue   = "batch_due"
)

// ComplianceTask es una obligación recurrente (hisopado ambiental, análisis
// microbiológico, calibración...) programada por tiempo transcurrido o por
// cantidad de batches producidos desde la última vez.
type ComplianceTask struct {
	ID             string
	Name           string
	Description    string
	FrequencyType  string
	FrequencyValue int // multiplicador del intervalo (semanas, batches, ...)
	Active         bool
	CreatedAt      time.Time
}

// ComplianceLog es el registro append-only de una ejecución completada.
type ComplianceLog struct {
	ID             string
	TaskID         string
	CompletedAt    time.Time
	CompletedBy    string
	BatchesCovered int    // para tareas por intervalo de batches
	Notes          string
	CreatedAt      time.Time
}
