package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.BatchIngredientActualRepository = (*BatchIngredientActualRepo)(nil)

// BatchIngredientActualRepo guarda objetivo y medición vigente por
// (batch, material). ON CONFLICT sobreescribe: no hay historial de mediciones.
type BatchIngredientActualRepo struct {
	q Querier
}

// NewBatchIngredientActualRepository construye el adaptador. Pasar pool o tx.
func NewBatchIngredientActualRepository(q Querier) *BatchIngredientActualRepo {
	return &BatchIngredientActualRepo{q: q}
}

// Upsert inserta o sobreescribe el registro del material en el batch.
func (r *BatchIngredientActualRepo) Upsert(actual *entity.BatchIngredientActual) error {
	query := `
		INSERT INTO batch_ingredient_actuals
			(id, batch_id, material_id, target_amount, actual_amount, unit, in_tolerance,
			 tolerance_percent, cure_required_grams, cure_ppm, cure_status, measured_at, measured_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12, NULLIF($13, ''), $14)
		ON CONFLICT (batch_id, material_id) DO UPDATE SET
			target_amount = EXCLUDED.target_amount,
			actual_amount = EXCLUDED.actual_amount,
			unit = EXCLUDED.unit,
			in_tolerance = EXCLUDED.in_tolerance,
			tolerance_percent = EXCLUDED.tolerance_percent,
			cure_required_grams = EXCLUDED.cure_required_grams,
			cure_ppm = EXCLUDED.cure_ppm,
			cure_status = EXCLUDED.cure_status,
			measured_at = EXCLUDED.measured_at,
			measured_by = EXCLUDED.measured_by,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		actual.ID, actual.BatchID, actual.MaterialID, actual.TargetAmount, actual.ActualAmount,
		actual.Unit, actual.InTolerance, actual.TolerancePercent, actual.CureRequiredGrams,
		actual.CurePpm, actual.CureStatus, actual.MeasuredAt, actual.MeasuredBy, actual.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert batch ingredient actual: %w", err)
	}
	return nil
}

// Get obtiene el registro de un material en un batch; nil si no existe.
func (r *BatchIngredientActualRepo) Get(batchID, materialID string) (*entity.BatchIngredientActual, error) {
	query := `
		SELECT id, batch_id, material_id, target_amount, actual_amount, unit, in_tolerance,
		       tolerance_percent, cure_required_grams, cure_ppm, COALESCE(cure_status, ''), measured_at, COALESCE(measured_by, ''), updated_at
		FROM batch_ingredient_actuals WHERE batch_id = $1 AND material_id = $2`
	var a entity.BatchIngredientActual
	err := r.q.QueryRow(context.Background(), query, batchID, materialID).Scan(
		&a.ID, &a.BatchID, &a.MaterialID, &a.TargetAmount, &a.ActualAmount, &a.Unit,
		&a.InTolerance, &a.TolerancePercent, &a.CureRequiredGrams, &a.CurePpm, &a.CureStatus,
		&a.MeasuredAt, &a.MeasuredBy, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch ingredient actual: %w", err)
	}
	return &a, nil
}

// ListByBatch lista los registros del batch.
func (r *BatchIngredientActualRepo) ListByBatch(batchID string) ([]*entity.BatchIngredientActual, error) {
	query := `
		SELECT id, batch_id, material_id, target_amount, actual_amount, unit, in_tolerance,
		       tolerance_percent, cure_required_grams, cure_ppm, COALESCE(cure_status, ''), measured_at, COALESCE(measured_by, ''), updated_at
		FROM batch_ingredient_actuals WHERE batch_id = $1 ORDER BY material_id`
	rows, err := r.q.Query(context.Background(), query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list batch ingredient actuals: %w", err)
	}
	defer rows.Close()
	var out []*entity.BatchIngredientActual
	for rows.Next() {
		var a entity.BatchIngredientActual
		if err := rows.Scan(
			&a.ID, &a.BatchID, &a.MaterialID, &a.TargetAmount, &a.ActualAmount, &a.Unit,
			&a.InTolerance, &a.TolerancePercent, &a.CureRequiredGrams, &a.CurePpm, &a.CureStatus,
			&a.MeasuredAt, &a.MeasuredBy, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan batch ingredient actual: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
