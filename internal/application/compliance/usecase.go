package compliance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Produccion-api/internal/domain"
	domaincomp "github.com/jhoicas/Produccion-api/internal/domain/compliance"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// UseCase deriva el estado de las tareas de cumplimiento y registra
// completitudes. La derivación es pura: el instante de referencia siempre
// entra como parámetro.
type UseCase struct {
	taskRepo  repository.ComplianceTaskRepository
	logRepo   repository.ComplianceLogRepository
	batchRepo repository.BatchRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	taskRepo repository.ComplianceTaskRepository,
	logRepo repository.ComplianceLogRepository,
	batchRepo repository.BatchRepository,
) *UseCase {
	return &UseCase{taskRepo: taskRepo, logRepo: logRepo, batchRepo: batchRepo}
}

// TaskWithStatus tarea junto con su estado derivado.
type TaskWithStatus struct {
	Task   *entity.ComplianceTask
	Status domaincomp.TaskStatus
}

// ListStatuses deriva el estado de todas las tareas activas al instante now.
func (uc *UseCase) ListStatuses(ctx context.Context, now time.Time) ([]TaskWithStatus, error) {
	tasks, err := uc.taskRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]TaskWithStatus, 0, len(tasks))
	for _, task := range tasks {
		status, err := uc.statusFor(task, now)
		if err != nil {
			return nil, err
		}
		out = append(out, TaskWithStatus{Task: task, Status: status})
	}
	return out, nil
}

// StatusFor deriva el estado de una tarea puntual.
func (uc *UseCase) StatusFor(ctx context.Context, taskID string, now time.Time) (domaincomp.TaskStatus, error) {
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil || task == nil {
		return domaincomp.TaskStatus{}, domain.ErrNotFound
	}
	return uc.statusFor(task, now)
}

func (uc *UseCase) statusFor(task *entity.ComplianceTask, now time.Time) (domaincomp.TaskStatus, error) {
	lastLog, err := uc.logRepo.GetLatestByTask(task.ID)
	if err != nil {
		return domaincomp.TaskStatus{}, err
	}
	batchesSince := 0
	if task.FrequencyType == entity.FrequencyBatchInterval {
		var after *time.Time
		if lastLog != nil {
			after = &lastLog.CompletedAt
		}
		batchesSince, err = uc.batchRepo.CountCreatedAfter(after)
		if err != nil {
			return domaincomp.TaskStatus{}, err
		}
	}
	return domaincomp.DeriveStatus(task, lastLog, batchesSince, now), nil
}

// RecordCompletion registra una ejecución completada de la tarea (append-only).
// Para tareas por batches guarda cuántos batches cubrió esta ejecución.
func (uc *UseCase) RecordCompletion(ctx context.Context, taskID, userID, notes string) (*entity.ComplianceLog, error) {
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil || task == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	covered := 0
	if task.FrequencyType == entity.FrequencyBatchInterval {
		lastLog, err := uc.logRepo.GetLatestByTask(task.ID)
		if err != nil {
			return nil, err
		}
		var after *time.Time
		if lastLog != nil {
			after = &lastLog.CompletedAt
		}
		covered, err = uc.batchRepo.CountCreatedAfter(after)
		if err != nil {
			return nil, err
		}
	}
	log := &entity.ComplianceLog{
		ID:             uuid.New().String(),
		TaskID:         taskID,
		CompletedAt:    now,
		CompletedBy:    userID,
		BatchesCovered: covered,
		Notes:          notes,
		CreatedAt:      now,
	}
	if err := uc.logRepo.Append(log); err != nil {
		return nil, err
	}
	return log, nil
}
