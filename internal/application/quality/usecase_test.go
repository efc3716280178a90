package quality_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/application/quality"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	domainqa "github.com/jhoicas/Produccion-api/internal/domain/quality"
)

// ── fakes en memoria ─────────────────────────────────────────────────────────

type fakeBatchRepo struct{ batches map[string]*entity.Batch }

func (r *fakeBatchRepo) Create(b *entity.Batch) error                    { r.batches[b.ID] = b; return nil }
func (r *fakeBatchRepo) GetByID(id string) (*entity.Batch, error)        { return r.batches[id], nil }
func (r *fakeBatchRepo) List(limit, offset int) ([]*entity.Batch, error) { return nil, nil }
func (r *fakeBatchRepo) Update(b *entity.Batch) error                    { return nil }
func (r *fakeBatchRepo) CountCreatedAfter(after *time.Time) (int, error) { return 0, nil }

type fakeCheckpointRepo struct{ checkpoints []*entity.QACheckpoint }

func (r *fakeCheckpointRepo) Create(cp *entity.QACheckpoint) error { return nil }
func (r *fakeCheckpointRepo) GetByID(id string) (*entity.QACheckpoint, error) {
	for _, cp := range r.checkpoints {
		if cp.ID == id {
			return cp, nil
		}
	}
	return nil, nil
}
func (r *fakeCheckpointRepo) ListActive() ([]*entity.QACheckpoint, error) {
	return r.checkpoints, nil
}

type fakeCheckRepo struct{ checks []*entity.BatchQACheck }

func (r *fakeCheckRepo) Upsert(c *entity.BatchQACheck) error {
	for i, existing := range r.checks {
		if existing.BatchID == c.BatchID && existing.CheckpointID == c.CheckpointID {
			r.checks[i] = c
			return nil
		}
	}
	r.checks = append(r.checks, c)
	return nil
}

func (r *fakeCheckRepo) ListByBatch(batchID string) ([]*entity.BatchQACheck, error) {
	var out []*entity.BatchQACheck
	for _, c := range r.checks {
		if c.BatchID == batchID {
			out = append(out, c)
		}
	}
	return out, nil
}

func setup(checks *fakeCheckRepo) *quality.UseCase {
	batches := &fakeBatchRepo{batches: map[string]*entity.Batch{
		"batch-1": {ID: "batch-1", Status: entity.BatchStatusInProgress},
	}}
	checkpoints := &fakeCheckpointRepo{checkpoints: []*entity.QACheckpoint{
		{ID: "cp-visual", Code: "final_inspection", Stage: entity.StageFinal, Required: true, Active: true},
		{ID: "cp-temp", Code: entity.CheckpointCodeCoreTemp, Stage: entity.StageDrying, Required: true, Active: true},
	}}
	return quality.NewUseCase(batches, checkpoints, checks, domainqa.DefaultCoreTempLimits())
}

// ── tests ────────────────────────────────────────────────────────────────────

func TestRecordCheck_GenericoRespetaReporte(t *testing.T) {
	checks := &fakeCheckRepo{}
	uc := setup(checks)

	check, err := uc.RecordCheck(context.Background(), quality.RecordCheckInput{
		BatchID:      "batch-1",
		CheckpointID: "cp-visual",
		Status:       entity.CheckStatusPassed,
		UserID:       "qa-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckStatusPassed, check.Status)
	assert.NotNil(t, check.CheckedAt)
	require.Len(t, checks.checks, 1)
}

// El resultado de core_temp sale de las sondas, no del estado reportado: un
// passed optimista con una sonda corta termina en failed.
func TestRecordCheck_CoreTempDerivaDeLasSondas(t *testing.T) {
	uc := setup(&fakeCheckRepo{})

	check, err := uc.RecordCheck(context.Background(), quality.RecordCheckInput{
		BatchID:      "batch-1",
		CheckpointID: "cp-temp",
		Status:       entity.CheckStatusPassed,
		Metadata:     json.RawMessage(`{"probes":[{"probe":"A","temperature_c":"70","hold_minutes":"5"}]}`),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CheckStatusFailed, check.Status,
		"70 °C bajo el mínimo de 72 °C debe derivar failed")
}

func TestRecordCheck_SobreescribeElVigente(t *testing.T) {
	checks := &fakeCheckRepo{}
	uc := setup(checks)

	_, err := uc.RecordCheck(context.Background(), quality.RecordCheckInput{
		BatchID: "batch-1", CheckpointID: "cp-visual", Status: entity.CheckStatusFailed,
	})
	require.NoError(t, err)
	_, err = uc.RecordCheck(context.Background(), quality.RecordCheckInput{
		BatchID: "batch-1", CheckpointID: "cp-visual", Status: entity.CheckStatusPassed,
	})
	require.NoError(t, err)

	require.Len(t, checks.checks, 1, "Un resultado vigente por (batch, checkpoint)")
	assert.Equal(t, entity.CheckStatusPassed, checks.checks[0].Status)
}

func TestRecordCheck_EstadoInvalido(t *testing.T) {
	uc := setup(&fakeCheckRepo{})
	_, err := uc.RecordCheck(context.Background(), quality.RecordCheckInput{
		BatchID: "batch-1", CheckpointID: "cp-visual", Status: "maybe",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordCheck_CheckpointInexistente(t *testing.T) {
	uc := setup(&fakeCheckRepo{})
	_, err := uc.RecordCheck(context.Background(), quality.RecordCheckInput{
		BatchID: "batch-1", CheckpointID: "cp-fantasma", Status: entity.CheckStatusPassed,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStageProgress_RollupDelBatch(t *testing.T) {
	checks := &fakeCheckRepo{checks: []*entity.BatchQACheck{
		{BatchID: "batch-1", CheckpointID: "cp-temp", Status: entity.CheckStatusPassed},
	}}
	uc := setup(checks)

	progress, err := uc.StageProgress(context.Background(), "batch-1")
	require.NoError(t, err)
	assert.False(t, progress.CanComplete, "final_inspection sigue pendiente")
	assert.Equal(t, 50, progress.OverallPercent, "1 de 2 obligatorios pasados")
}
