package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// QACheckpointRepository define el puerto para definiciones de checkpoints.
type QACheckpointRepository interface {
	Create(checkpoint *entity.QACheckpoint) error
	GetByID(id string) (*entity.QACheckpoint, error)
	ListActive() ([]*entity.QACheckpoint, error)
}

// BatchQACheckRepository guarda el resultado vigente de cada checkpoint por
// batch. Upsert: un registro por (batch, checkpoint).
type BatchQACheckRepository interface {
	Upsert(check *entity.BatchQACheck) error
	ListByBatch(batchID string) ([]*entity.BatchQACheck, error)
}
