package quality

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	domainqa "github.com/jhoicas/Produccion-api/internal/domain/quality"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// UseCase registra resultados de checkpoints de calidad y calcula el avance
// por etapa de un batch. Para checkpoints con forma conocida (temperatura
// interna) el resultado se deriva del metadata, no del estado reportado.
type UseCase struct {
	batchRepo      repository.BatchRepository
	checkpointRepo repository.QACheckpointRepository
	checkRepo      repository.BatchQACheckRepository
	coreTempLimits domainqa.CoreTempLimits
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	batchRepo repository.BatchRepository,
	checkpointRepo repository.QACheckpointRepository,
	checkRepo repository.BatchQACheckRepository,
	coreTempLimits domainqa.CoreTempLimits,
) *UseCase {
	return &UseCase{
		batchRepo:      batchRepo,
		checkpointRepo: checkpointRepo,
		checkRepo:      checkRepo,
		coreTempLimits: coreTempLimits,
	}
}

// RecordCheckInput entrada para registrar el resultado de un checkpoint.
type RecordCheckInput struct {
	BatchID      string
	CheckpointID string
	Status       string
	Metadata     json.RawMessage
	Notes        string
	UserID       string
}

// RecordCheck guarda el resultado vigente del checkpoint para el batch.
// El estado reportado debe ser válido; en checkpoints con derivación especial
// el estado final sale del metadata (todas las sondas sobre los mínimos).
func (uc *UseCase) RecordCheck(ctx context.Context, input RecordCheckInput) (*entity.BatchQACheck, error) {
	switch input.Status {
	case entity.CheckStatusPending, entity.CheckStatusPassed, entity.CheckStatusFailed,
		entity.CheckStatusSkipped, entity.CheckStatusConditional:
	default:
		return nil, domain.ErrInvalidInput
	}
	batch, err := uc.batchRepo.GetByID(input.BatchID)
	if err != nil || batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.Status != entity.BatchStatusInProgress {
		return nil, domain.ErrInvalidTransition
	}
	checkpoint, err := uc.checkpointRepo.GetByID(input.CheckpointID)
	if err != nil || checkpoint == nil {
		return nil, domain.ErrNotFound
	}

	status, err := domainqa.DeriveStatus(checkpoint.Code, input.Status, input.Metadata, uc.coreTempLimits)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	check := &entity.BatchQACheck{
		ID:           uuid.New().String(),
		BatchID:      input.BatchID,
		CheckpointID: input.CheckpointID,
		Status:       status,
		Metadata:     input.Metadata,
		Notes:        input.Notes,
		CheckedAt:    &now,
		CheckedBy:    input.UserID,
		UpdatedAt:    now,
	}
	if err := uc.checkRepo.Upsert(check); err != nil {
		return nil, err
	}
	return check, nil
}

// StageProgress devuelve el rollup por etapa del batch: porcentajes, etapa
// activa y si el batch ya puede completarse.
func (uc *UseCase) StageProgress(ctx context.Context, batchID string) (domainqa.StageProgress, error) {
	if batchID == "" {
		return domainqa.StageProgress{}, domain.ErrInvalidInput
	}
	checkpoints, err := uc.checkpointRepo.ListActive()
	if err != nil {
		return domainqa.StageProgress{}, err
	}
	checks, err := uc.checkRepo.ListByBatch(batchID)
	if err != nil {
		return domainqa.StageProgress{}, err
	}
	return domainqa.AggregateStages(checkpoints, checks), nil
}
