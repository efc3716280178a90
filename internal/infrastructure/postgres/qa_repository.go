package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.QACheckpointRepository = (*QACheckpointRepo)(nil)
var _ repository.BatchQACheckRepository = (*BatchQACheckRepo)(nil)

// QACheckpointRepo definiciones de checkpoints sobre PostgreSQL.
type QACheckpointRepo struct {
	q Querier
}

// NewQACheckpointRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQACheckpointRepository(q Querier) *QACheckpointRepo {
	return &QACheckpointRepo{q: q}
}

// Create persiste una definición de checkpoint.
func (r *QACheckpointRepo) Create(checkpoint *entity.QACheckpoint) error {
	query := `
		INSERT INTO qa_checkpoints (id, code, name, description, stage, required, active, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		checkpoint.ID, checkpoint.Code, checkpoint.Name, checkpoint.Description,
		checkpoint.Stage, checkpoint.Required, checkpoint.Active,
		checkpoint.DisplayOrder, checkpoint.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create qa checkpoint: %w", err)
	}
	return nil
}

// GetByID obtiene un checkpoint por id; nil si no existe.
func (r *QACheckpointRepo) GetByID(id string) (*entity.QACheckpoint, error) {
	query := `
		SELECT id, code, name, description, stage, required, active, display_order, created_at
		FROM qa_checkpoints WHERE id = $1`
	var cp entity.QACheckpoint
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&cp.ID, &cp.Code, &cp.Name, &cp.Description, &cp.Stage,
		&cp.Required, &cp.Active, &cp.DisplayOrder, &cp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get qa checkpoint: %w", err)
	}
	return &cp, nil
}

// ListActive lista las definiciones activas en orden de presentación.
func (r *QACheckpointRepo) ListActive() ([]*entity.QACheckpoint, error) {
	query := `
		SELECT id, code, name, description, stage, required, active, display_order, created_at
		FROM qa_checkpoints WHERE active ORDER BY stage, display_order`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list qa checkpoints: %w", err)
	}
	defer rows.Close()
	var out []*entity.QACheckpoint
	for rows.Next() {
		var cp entity.QACheckpoint
		if err := rows.Scan(
			&cp.ID, &cp.Code, &cp.Name, &cp.Description, &cp.Stage,
			&cp.Required, &cp.Active, &cp.DisplayOrder, &cp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan qa checkpoint: %w", err)
		}
		out = append(out, &cp)
	}
	return out, rows.Err()
}

// BatchQACheckRepo resultados vigentes de checkpoints por batch.
type BatchQACheckRepo struct {
	q Querier
}

// NewBatchQACheckRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchQACheckRepository(q Querier) *BatchQACheckRepo {
	return &BatchQACheckRepo{q: q}
}

// Upsert inserta o sobreescribe el resultado del checkpoint para el batch.
func (r *BatchQACheckRepo) Upsert(check *entity.BatchQACheck) error {
	query := `
		INSERT INTO batch_qa_checks (id, batch_id, checkpoint_id, status, metadata, notes, checked_at, checked_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9)
		ON CONFLICT (batch_id, checkpoint_id) DO UPDATE SET
			status = EXCLUDED.status,
			metadata = EXCLUDED.metadata,
			notes = EXCLUDED.notes,
			checked_at = EXCLUDED.checked_at,
			checked_by = EXCLUDED.checked_by,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		check.ID, check.BatchID, check.CheckpointID, check.Status, check.Metadata,
		check.Notes, check.CheckedAt, check.CheckedBy, check.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert batch qa check: %w", err)
	}
	return nil
}

// ListByBatch lista los resultados del batch.
func (r *BatchQACheckRepo) ListByBatch(batchID string) ([]*entity.BatchQACheck, error) {
	query := `
		SELECT id, batch_id, checkpoint_id, status, metadata, notes, checked_at, COALESCE(checked_by, ''), updated_at
		FROM batch_qa_checks WHERE batch_id = $1`
	rows, err := r.q.Query(context.Background(), query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list batch qa checks: %w", err)
	}
	defer rows.Close()
	var out []*entity.BatchQACheck
	for rows.Next() {
		var c entity.BatchQACheck
		if err := rows.Scan(
			&c.ID, &c.BatchID, &c.CheckpointID, &c.Status, &c.Metadata,
			&c.Notes, &c.CheckedAt, &c.CheckedBy, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan batch qa check: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
