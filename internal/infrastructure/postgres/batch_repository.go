package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

const batchColumns = `id, code, recipe_id, input_mass, input_mass_unit, scaling_factor,
		status, COALESCE(release_status, ''), production_date, completed_at, released_at,
		notes, created_at, updated_at, COALESCE(created_by, '')`

// BatchRepo implementación de BatchRepository sobre PostgreSQL.
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un batch nuevo.
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches
			(id, code, recipe_id, input_mass, input_mass_unit, scaling_factor,
			 status, production_date, notes, created_at, updated_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	createdBy := (*string)(nil)
	if batch.CreatedBy != "" {
		createdBy = &batch.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.Code, batch.RecipeID, batch.InputMass, batch.InputMassUnit,
		batch.ScalingFactor, batch.Status, batch.ProductionDate, batch.Notes,
		batch.CreatedAt, batch.UpdatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create batch: %w", err)
	}
	return nil
}

// GetByID obtiene un batch por id; nil si no existe.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	var b entity.Batch
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.Code, &b.RecipeID, &b.InputMass, &b.InputMassUnit, &b.ScalingFactor,
		&b.Status, &b.ReleaseStatus, &b.ProductionDate, &b.CompletedAt, &b.ReleasedAt,
		&b.Notes, &b.CreatedAt, &b.UpdatedAt, &b.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

// List lista batches, más recientes primero.
func (r *BatchRepo) List(limit, offset int) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var out []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(
			&b.ID, &b.Code, &b.RecipeID, &b.InputMass, &b.InputMassUnit, &b.ScalingFactor,
			&b.Status, &b.ReleaseStatus, &b.ProductionDate, &b.CompletedAt, &b.ReleasedAt,
			&b.Notes, &b.CreatedAt, &b.UpdatedAt, &b.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

// Update persiste estado, veredicto de liberación y marcas de tiempo.
func (r *BatchRepo) Update(batch *entity.Batch) error {
	query := `
		UPDATE batches SET status = $2, release_status = NULLIF($3, ''), completed_at = $4,
			released_at = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.Status, batch.ReleaseStatus, batch.CompletedAt,
		batch.ReleasedAt, batch.Notes, batch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	return nil
}

// CountCreatedAfter cuenta batches creados después del instante dado; con nil
// cuenta el total histórico (tareas de cumplimiento nunca completadas).
func (r *BatchRepo) CountCreatedAfter(after *time.Time) (int, error) {
	var count int
	var err error
	if after == nil {
		err = r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM batches`).Scan(&count)
	} else {
		err = r.q.QueryRow(context.Background(),
			`SELECT COUNT(*) FROM batches WHERE created_at > $1`, *after).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("count batches: %w", err)
	}
	return count, nil
}
