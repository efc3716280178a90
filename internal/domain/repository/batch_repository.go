package repository

import (
	"time"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// BatchRepository define el puerto de persistencia para batches de producción.
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	List(limit, offset int) ([]*entity.Batch, error)
	Update(batch *entity.Batch) error
	// CountCreatedAfter cuenta batches creados después de un instante (para el
	// scheduler de cumplimiento). Con nil cuenta el total histórico.
	CountCreatedAfter(after *time.Time) (int, error)
}

// BatchIngredientActualRepository guarda el objetivo y la medición vigente por
// (batch, material). Upsert sobreescribe: no se conserva historial de mediciones.
type BatchIngredientActualRepository interface {
	Upsert(actual *entity.BatchIngredientActual) error
	Get(batchID, materialID string) (*entity.BatchIngredientActual, error)
	ListByBatch(batchID string) ([]*entity.BatchIngredientActual, error)
}

// BatchLotUsageRepository registra los lotes consumidos por cada batch
// (trazabilidad producto terminado → lote de proveedor).
type BatchLotUsageRepository interface {
	Create(usage *entity.BatchLotUsage) error
	ListByBatch(batchID string) ([]*entity.BatchLotUsage, error)
	ListByLot(lotID string) ([]*entity.BatchLotUsage, error)
}
