// Package compliance deriva el estado de obligaciones recurrentes (hisopados,
// análisis, calibraciones) a partir del último registro de completitud y, para
// tareas por batches, del conteo de batches producidos desde entonces.
// Función pura sobre sus entradas: el "ahora" siempre llega como parámetro.
package compliance

import (
	"math"
	"time"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// Umbral de aviso anticipado: 2 batches o 2 días antes del vencimiento.
const dueSoonWindow = 2

// TaskStatus es el estado derivado de una tarea en un instante dado.
type TaskStatus struct {
	TaskID           string
	Status           string
	BatchesSinceLast int
	BatchesRemaining int
	DueAt            *time.Time
	DaysOverdue      int
	LastCompletedAt  *time.Time
}

// intervalDays días base por tipo de frecuencia temporal.
var intervalDays = map[string]int{
	entity.FrequencyWeekly:      7,
	entity.FrequencyFortnightly: 14,
	entity.FrequencyMonthly:     30,
}

// DeriveStatus calcula el estado de una tarea. lastLog es nil si nunca se
// completó; batchesSinceLast es el conteo de batches creados después del
// último registro (o el total histórico si nunca se completó).
func DeriveStatus(task *entity.ComplianceTask, lastLog *entity.ComplianceLog, batchesSinceLast int, now time.Time) TaskStatus {
	st := TaskStatus{TaskID: task.ID}
	if lastLog != nil {
		t := lastLog.CompletedAt
		st.LastCompletedAt = &t
	}

	switch task.FrequencyType {
	case entity.FrequencyBatchInterval:
		return deriveBatchInterval(task, lastLog, batchesSinceLast, st)
	case entity.FrequencyWeekly, entity.FrequencyFortnightly, entity.FrequencyMonthly:
		return deriveTimeBased(task, lastLog, now, st)
	default:
		// custom sin mapeo de intervalo: on_track apenas exista una completitud
		if lastLog == nil {
			st.Status = entity.ComplianceNotStarted
		} else {
			st.Status = entity.ComplianceOnTrack
		}
		return st
	}
}

// deriveBatchInterval cuenta batches contra frequency_value. Una tarea nunca
// completada arranca contra el total histórico de batches: solo es
// not_started mientras no haya ni registro ni batches producidos.
func deriveBatchInterval(task *entity.ComplianceTask, lastLog *entity.ComplianceLog, since int, st TaskStatus) TaskStatus {
	if lastLog == nil && since == 0 {
		st.Status = entity.ComplianceNotStarted
		return st
	}
	st.BatchesSinceLast = since
	remaining := task.FrequencyValue - since
	if remaining < 0 {
		remaining = 0
	}
	st.BatchesRemaining = remaining
	switch {
	case since >= task.FrequencyValue:
		st.Status = entity.ComplianceBatchDue
	case remaining <= dueSoonWindow:
		st.Status = entity.ComplianceDueSoon
	default:
		st.Status = entity.ComplianceOnTrack
	}
	return st
}

func deriveTimeBased(task *entity.ComplianceTask, lastLog *entity.ComplianceLog, now time.Time, st TaskStatus) TaskStatus {
	if lastLog == nil {
		st.Status = entity.ComplianceNotStarted
		return st
	}
	days := intervalDays[task.FrequencyType] * task.FrequencyValue
	dueAt := lastLog.CompletedAt.AddDate(0, 0, days)
	st.DueAt = &dueAt

	delta := dueAt.Sub(now)
	switch {
	case delta < 0:
		st.Status = entity.ComplianceOverdue
		st.DaysOverdue = int(math.Ceil(delta.Abs().Hours() / 24))
	case delta <= dueSoonWindow*24*time.Hour:
		st.Status = entity.ComplianceDueSoon
	default:
		st.Status = entity.ComplianceOnTrack
	}
	return st
}
