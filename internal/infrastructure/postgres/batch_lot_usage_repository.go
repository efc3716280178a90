package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.BatchLotUsageRepository = (*BatchLotUsageRepo)(nil)

// BatchLotUsageRepo registros batch-lote para trazabilidad sobre PostgreSQL.
type BatchLotUsageRepo struct {
	q Querier
}

// NewBatchLotUsageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchLotUsageRepository(q Querier) *BatchLotUsageRepo {
	return &BatchLotUsageRepo{q: q}
}

// Create persiste un registro de uso.
func (r *BatchLotUsageRepo) Create(usage *entity.BatchLotUsage) error {
	query := `
		INSERT INTO batch_lot_usages (id, batch_id, lot_id, material_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		usage.ID, usage.BatchID, usage.LotID, usage.MaterialID, usage.Quantity, usage.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create batch lot usage: %w", err)
	}
	return nil
}

// ListByBatch lista los lotes consumidos por un batch.
func (r *BatchLotUsageRepo) ListByBatch(batchID string) ([]*entity.BatchLotUsage, error) {
	return r.list(`SELECT id, batch_id, lot_id, material_id, quantity, created_at
		FROM batch_lot_usages WHERE batch_id = $1 ORDER BY created_at, id`, batchID)
}

// ListByLot lista los batches que consumieron un lote (consulta de recall).
func (r *BatchLotUsageRepo) ListByLot(lotID string) ([]*entity.BatchLotUsage, error) {
	return r.list(`SELECT id, batch_id, lot_id, material_id, quantity, created_at
		FROM batch_lot_usages WHERE lot_id = $1 ORDER BY created_at, id`, lotID)
}

func (r *BatchLotUsageRepo) list(query, arg string) ([]*entity.BatchLotUsage, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list batch lot usages: %w", err)
	}
	defer rows.Close()
	var out []*entity.BatchLotUsage
	for rows.Next() {
		var u entity.BatchLotUsage
		if err := rows.Scan(&u.ID, &u.BatchID, &u.LotID, &u.MaterialID, &u.Quantity, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan batch lot usage: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
