package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	domainprod "github.com/jhoicas/Produccion-api/internal/domain/production"
	"github.com/jhoicas/Produccion-api/internal/domain/quality"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// BatchUseCase gestiona el ciclo de vida de un batch: creación a partir de
// receta + masa de entrada, completitud (condicionada a calidad), liberación
// y recall. Las transiciones son unidireccionales salvo recall.
type BatchUseCase struct {
	batchRepo      repository.BatchRepository
	recipeRepo     repository.RecipeRepository
	checkpointRepo repository.QACheckpointRepository
	checkRepo      repository.BatchQACheckRepository
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(
	batchRepo repository.BatchRepository,
	recipeRepo repository.RecipeRepository,
	checkpointRepo repository.QACheckpointRepository,
	checkRepo repository.BatchQACheckRepository,
) *BatchUseCase {
	return &BatchUseCase{
		batchRepo:      batchRepo,
		recipeRepo:     recipeRepo,
		checkpointRepo: checkpointRepo,
		checkRepo:      checkRepo,
	}
}

// CreateBatchInput entrada para abrir un batch de producción.
type CreateBatchInput struct {
	RecipeID      string
	InputMass     decimal.Decimal
	InputMassUnit string          // g o kg
	ScalingFactor decimal.Decimal // override explícito; cero = calcular
	Notes         string
	UserID        string
}

// Create abre un batch validando que el factor de escalado resultante sea
// positivo antes de persistir nada.
func (uc *BatchUseCase) Create(ctx context.Context, input CreateBatchInput) (*entity.Batch, error) {
	if input.RecipeID == "" || !input.InputMass.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if input.InputMassUnit == "" {
		input.InputMassUnit = entity.UnitGrams
	}
	recipe, err := uc.recipeRepo.GetByID(input.RecipeID)
	if err != nil || recipe == nil {
		return nil, domain.ErrNotFound
	}
	inputGrams := domainprod.ToGrams(input.InputMass, input.InputMassUnit)
	if _, err := domainprod.ScalingFactor(inputGrams, recipe.BaseReferenceMass, input.ScalingFactor); err != nil {
		return nil, err
	}

	now := time.Now()
	batch := &entity.Batch{
		ID:             uuid.New().String(),
		Code:           fmt.Sprintf("B%s-%s", now.Format("20060102"), uuid.New().String()[:8]),
		RecipeID:       input.RecipeID,
		InputMass:      input.InputMass,
		InputMassUnit:  input.InputMassUnit,
		ScalingFactor:  input.ScalingFactor,
		Status:         entity.BatchStatusInProgress,
		ProductionDate: now,
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      input.UserID,
	}
	if err := uc.batchRepo.Create(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// GetByID devuelve un batch.
func (uc *BatchUseCase) GetByID(ctx context.Context, batchID string) (*entity.Batch, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil || batch == nil {
		return nil, domain.ErrNotFound
	}
	return batch, nil
}

// List devuelve batches paginados, los más recientes primero.
func (uc *BatchUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Batch, error) {
	return uc.batchRepo.List(limit, offset)
}

// Complete marca el batch como completado. Precondición dura: todas las
// etapas deben tener sus checkpoints obligatorios en passed (CanComplete);
// si no, se rechaza sin tocar estado.
func (uc *BatchUseCase) Complete(ctx context.Context, batchID string) (*entity.Batch, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil || batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.Status != entity.BatchStatusInProgress {
		return nil, domain.ErrInvalidTransition
	}
	checkpoints, err := uc.checkpointRepo.ListActive()
	if err != nil {
		return nil, err
	}
	checks, err := uc.checkRepo.ListByBatch(batchID)
	if err != nil {
		return nil, err
	}
	progress := quality.AggregateStages(checkpoints, checks)
	if !progress.CanComplete {
		return nil, domain.ErrBatchNotCompletable
	}

	now := time.Now()
	batch.Status = entity.BatchStatusCompleted
	batch.CompletedAt = &now
	batch.UpdatedAt = now
	if err := uc.batchRepo.Update(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// Cancel anula un batch en curso. Un batch completado o liberado ya no se anula.
func (uc *BatchUseCase) Cancel(ctx context.Context, batchID string) (*entity.Batch, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil || batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.Status != entity.BatchStatusInProgress {
		return nil, domain.ErrInvalidTransition
	}
	batch.Status = entity.BatchStatusCancelled
	batch.UpdatedAt = time.Now()
	if err := uc.batchRepo.Update(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// Release libera un batch completado con veredicto approved o hold.
func (uc *BatchUseCase) Release(ctx context.Context, batchID, releaseStatus string) (*entity.Batch, error) {
	if releaseStatus != entity.ReleaseStatusApproved && releaseStatus != entity.ReleaseStatusHold {
		return nil, domain.ErrInvalidInput
	}
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil || batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.Status != entity.BatchStatusCompleted {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	batch.Status = entity.BatchStatusReleased
	batch.ReleaseStatus = releaseStatus
	batch.ReleasedAt = &now
	batch.UpdatedAt = now
	if err := uc.batchRepo.Update(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// Recall es la única transición permitida después de released: marca el batch
// como retirado del mercado.
func (uc *BatchUseCase) Recall(ctx context.Context, batchID string) (*entity.Batch, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil || batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.Status != entity.BatchStatusReleased {
		return nil, domain.ErrInvalidTransition
	}
	batch.ReleaseStatus = entity.ReleaseStatusRecalled
	batch.UpdatedAt = time.Now()
	if err := uc.batchRepo.Update(batch); err != nil {
		return nil, err
	}
	return batch, nil
}
