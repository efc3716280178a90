// Package quality agrega el estado de los checkpoints de calidad de un batch
// por etapa y deriva resultados especiales a partir del metadata de ciertos
// códigos de checkpoint. Lógica pura, sin persistencia.
package quality

import (
	"math"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// StageSummary es el avance de una etapa: checkpoints obligatorios totales,
// cuántos están en passed y el porcentaje redondeado.
type StageSummary struct {
	Stage          string
	RequiredTotal  int
	RequiredPassed int
	Percent        int
}

// StageProgress es el rollup de todas las etapas de un batch.
type StageProgress struct {
	Stages         []StageSummary
	CurrentStage   string
	OverallPercent int
	CanComplete    bool
}

// AggregateStages recorre las etapas en su orden canónico y calcula el avance
// por etapa y global. Solo cuentan los checkpoints activos y obligatorios; una
// etapa sin obligatorios está al 100%. CurrentStage es la primera etapa
// incompleta (o final si todas están completas). CanComplete solo es true
// cuando toda etapa tiene sus obligatorios en passed: es la precondición dura
// para completar un batch, no una sugerencia.
func AggregateStages(checkpoints []*entity.QACheckpoint, checks []*entity.BatchQACheck) StageProgress {
	latest := make(map[string]string, len(checks)) // checkpointID -> status vigente
	for _, c := range checks {
		latest[c.CheckpointID] = c.Status
	}

	progress := StageProgress{CurrentStage: entity.StageFinal, CanComplete: true}
	totalRequired, totalPassed := 0, 0
	currentSet := false

	for _, stage := range entity.StageOrder {
		summary := StageSummary{Stage: stage}
		for _, cp := range checkpoints {
			if cp.Stage != stage || !cp.Active || !cp.Required {
				continue
			}
			summary.RequiredTotal++
			if latest[cp.ID] == entity.CheckStatusPassed {
				summary.RequiredPassed++
			}
		}
		summary.Percent = roundPercent(summary.RequiredPassed, summary.RequiredTotal)
		totalRequired += summary.RequiredTotal
		totalPassed += summary.RequiredPassed

		if summary.RequiredPassed < summary.RequiredTotal {
			progress.CanComplete = false
			if !currentSet {
				progress.CurrentStage = stage
				currentSet = true
			}
		}
		progress.Stages = append(progress.Stages, summary)
	}

	progress.OverallPercent = roundPercent(totalPassed, totalRequired)
	return progress
}

// roundPercent redondea passed/total a porcentaje entero; sin obligatorios es 100.
func roundPercent(passed, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}
