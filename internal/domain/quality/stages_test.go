package quality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/quality"
)

func checkpoint(id, stage string, required bool) *entity.QACheckpoint {
	return &entity.QACheckpoint{ID: id, Code: id, Stage: stage, Required: required, Active: true}
}

func passed(checkpointID string) *entity.BatchQACheck {
	return &entity.BatchQACheck{CheckpointID: checkpointID, Status: entity.CheckStatusPassed}
}

func TestAggregateStages_TodoPasadoPermiteCompletar(t *testing.T) {
	checkpoints := []*entity.QACheckpoint{
		checkpoint("cp1", entity.StagePreparation, true),
		checkpoint("cp2", entity.StageMixing, true),
	}
	checks := []*entity.BatchQACheck{passed("cp1"), passed("cp2")}

	progress := quality.AggregateStages(checkpoints, checks)
	assert.True(t, progress.CanComplete, "Con todos los obligatorios en passed el batch puede completarse")
	assert.Equal(t, 100, progress.OverallPercent)
	assert.Equal(t, entity.StageFinal, progress.CurrentStage,
		"Con todo completo la etapa activa es la final")
}

func TestAggregateStages_PorcentajePorEtapa(t *testing.T) {
	checkpoints := []*entity.QACheckpoint{
		checkpoint("cp1", entity.StagePreparation, true),
		checkpoint("cp2", entity.StagePreparation, true),
	}
	checks := []*entity.BatchQACheck{passed("cp1")}

	progress := quality.AggregateStages(checkpoints, checks)
	require.NotEmpty(t, progress.Stages)
	prep := progress.Stages[0]
	assert.Equal(t, entity.StagePreparation, prep.Stage)
	assert.Equal(t, 2, prep.RequiredTotal)
	assert.Equal(t, 1, prep.RequiredPassed)
	assert.Equal(t, 50, prep.Percent, "1 de 2 obligatorios es 50%")
	assert.False(t, progress.CanComplete)
}

// La etapa activa es la PRIMERA incompleta en el orden canónico, aunque
// etapas posteriores ya tengan checks pasados.
func TestAggregateStages_EtapaActivaEsLaPrimeraIncompleta(t *testing.T) {
	checkpoints := []*entity.QACheckpoint{
		checkpoint("cp1", entity.StagePreparation, true),
		checkpoint("cp2", entity.StageMixing, true),
		checkpoint("cp3", entity.StageDrying, true),
	}
	checks := []*entity.BatchQACheck{passed("cp1"), passed("cp3")}

	progress := quality.AggregateStages(checkpoints, checks)
	assert.Equal(t, entity.StageMixing, progress.CurrentStage)
	assert.False(t, progress.CanComplete)
}

func TestAggregateStages_FailedNoCuentaComoPasado(t *testing.T) {
	checkpoints := []*entity.QACheckpoint{checkpoint("cp1", entity.StagePreparation, true)}
	checks := []*entity.BatchQACheck{
		{CheckpointID: "cp1", Status: entity.CheckStatusFailed},
	}
	progress := quality.AggregateStages(checkpoints, checks)
	assert.False(t, progress.CanComplete, "Un checkpoint failed bloquea la completitud")
}

func TestAggregateStages_OpcionalesNoBloquean(t *testing.T) {
	checkpoints := []*entity.QACheckpoint{
		checkpoint("cp1", entity.StagePreparation, true),
		checkpoint("cp2", entity.StagePreparation, false), // opcional sin check
	}
	checks := []*entity.BatchQACheck{passed("cp1")}

	progress := quality.AggregateStages(checkpoints, checks)
	assert.True(t, progress.CanComplete, "Los checkpoints opcionales no bloquean la completitud")
}

func TestAggregateStages_InactivosNoCuentan(t *testing.T) {
	inactive := checkpoint("cp1", entity.StagePreparation, true)
	inactive.Active = false

	progress := quality.AggregateStages([]*entity.QACheckpoint{inactive}, nil)
	assert.True(t, progress.CanComplete, "Un checkpoint inactivo no cuenta ni bloquea")
	assert.Equal(t, 100, progress.OverallPercent)
}

// Sin checkpoints obligatorios toda etapa está al 100% y el batch puede
// completarse de inmediato.
func TestAggregateStages_SinObligatoriosEsCien(t *testing.T) {
	progress := quality.AggregateStages(nil, nil)
	assert.True(t, progress.CanComplete)
	assert.Equal(t, 100, progress.OverallPercent)
	for _, s := range progress.Stages {
		assert.Equal(t, 100, s.Percent, "Etapa %s sin obligatorios debe estar al 100%%", s.Stage)
	}
}
