package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// ComplianceTaskRepository define el puerto para tareas de cumplimiento.
type ComplianceTaskRepository interface {
	Create(task *entity.ComplianceTask) error
	GetByID(id string) (*entity.ComplianceTask, error)
	ListActive() ([]*entity.ComplianceTask, error)
}

// ComplianceLogRepository registro append-only de completitudes.
type ComplianceLogRepository interface {
	Append(log *entity.ComplianceLog) error
	GetLatestByTask(taskID string) (*entity.ComplianceLog, error)
	ListByTask(taskID string, limit, offset int) ([]*entity.ComplianceLog, error)
}
