package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.ComplianceTaskRepository = (*ComplianceTaskRepo)(nil)
var _ repository.ComplianceLogRepository = (*ComplianceLogRepo)(nil)

// ComplianceTaskRepo tareas de cumplimiento sobre PostgreSQL.
type ComplianceTaskRepo struct {
	q Querier
}

// NewComplianceTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComplianceTaskRepository(q Querier) *ComplianceTaskRepo {
	return &ComplianceTaskRepo{q: q}
}

// Create persiste una tarea.
func (r *ComplianceTaskRepo) Create(task *entity.ComplianceTask) error {
	query := `
		INSERT INTO compliance_tasks (id, name, description, frequency_type, frequency_value, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		task.ID, task.Name, task.Description, task.FrequencyType,
		task.FrequencyValue, task.Active, task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create compliance task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por id; nil si no existe.
func (r *ComplianceTaskRepo) GetByID(id string) (*entity.ComplianceTask, error) {
	query := `
		SELECT id, name, description, frequency_type, frequency_value, active, created_at
		FROM compliance_tasks WHERE id = $1`
	var t entity.ComplianceTask
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.Description, &t.FrequencyType, &t.FrequencyValue, &t.Active, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compliance task: %w", err)
	}
	return &t, nil
}

// ListActive lista las tareas activas.
func (r *ComplianceTaskRepo) ListActive() ([]*entity.ComplianceTask, error) {
	query := `
		SELECT id, name, description, frequency_type, frequency_value, active, created_at
		FROM compliance_tasks WHERE active ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list compliance tasks: %w", err)
	}
	defer rows.Close()
	var out []*entity.ComplianceTask
	for rows.Next() {
		var t entity.ComplianceTask
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.FrequencyType, &t.FrequencyValue, &t.Active, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan compliance task: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// ComplianceLogRepo registros append-only de completitud sobre PostgreSQL.
type ComplianceLogRepo struct {
	q Querier
}

// NewComplianceLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewComplianceLogRepository(q Querier) *ComplianceLogRepo {
	return &ComplianceLogRepo{q: q}
}

// Append inserta un registro de completitud.
func (r *ComplianceLogRepo) Append(log *entity.ComplianceLog) error {
	query := `
		INSERT INTO compliance_logs (id, task_id, completed_at, completed_by, batches_covered, notes, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.TaskID, log.CompletedAt, log.CompletedBy, log.BatchesCovered, log.Notes, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append compliance log: %w", err)
	}
	return nil
}

// GetLatestByTask devuelve la completitud más reciente; nil si nunca se completó.
func (r *ComplianceLogRepo) GetLatestByTask(taskID string) (*entity.ComplianceLog, error) {
	query := `
		SELECT id, task_id, completed_at, COALESCE(completed_by, ''), batches_covered, notes, created_at
		FROM compliance_logs WHERE task_id = $1 ORDER BY completed_at DESC LIMIT 1`
	var l entity.ComplianceLog
	err := r.q.QueryRow(context.Background(), query, taskID).Scan(
		&l.ID, &l.TaskID, &l.CompletedAt, &l.CompletedBy, &l.BatchesCovered, &l.Notes, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest compliance log: %w", err)
	}
	return &l, nil
}

// ListByTask lista las completitudes de una tarea, más recientes primero.
func (r *ComplianceLogRepo) ListByTask(taskID string, limit, offset int) ([]*entity.ComplianceLog, error) {
	query := `
		SELECT id, task_id, completed_at, COALESCE(completed_by, ''), batches_covered, notes, created_at
		FROM compliance_logs WHERE task_id = $1 ORDER BY completed_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, taskID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list compliance logs: %w", err)
	}
	defer rows.Close()
	var out []*entity.ComplianceLog
	for rows.Next() {
		var l entity.ComplianceLog
		if err := rows.Scan(
			&l.ID, &l.TaskID, &l.CompletedAt, &l.CompletedBy, &l.BatchesCovered, &l.Notes, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan compliance log: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
