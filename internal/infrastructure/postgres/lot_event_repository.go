package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.LotEventRepository = (*LotEventRepo)(nil)

// LotEventRepo ledger append-only de lotes sobre PostgreSQL. Solo INSERT y
// SELECT: no hay UPDATE ni DELETE sobre esta tabla por diseño.
type LotEventRepo struct {
	q Querier
}

// NewLotEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotEventRepository(q Querier) *LotEventRepo {
	return &LotEventRepo{q: q}
}

// Append inserta un evento del ledger.
func (r *LotEventRepo) Append(event *entity.LotEvent) error {
	query := `
		INSERT INTO lot_events (id, lot_id, batch_id, event_type, quantity, balance_after, reference, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	batchID := (*string)(nil)
	if event.BatchID != "" {
		batchID = &event.BatchID
	}
	createdBy := (*string)(nil)
	if event.CreatedBy != "" {
		createdBy = &event.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.LotID, batchID, event.EventType, event.Quantity,
		event.BalanceAfter, event.Reference, event.Notes, event.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("append lot event: %w", err)
	}
	return nil
}

// ListByLot lista los eventos de un lote en orden de inserción.
func (r *LotEventRepo) ListByLot(lotID string) ([]*entity.LotEvent, error) {
	query := `
		SELECT id, lot_id, COALESCE(batch_id, ''), event_type, quantity, balance_after, reference, notes, created_at, COALESCE(created_by, '')
		FROM lot_events WHERE lot_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, lotID)
	if err != nil {
		return nil, fmt.Errorf("list lot events: %w", err)
	}
	return r.scanAll(rows)
}

// ListByBatch lista los eventos asociados a un batch (consumos).
func (r *LotEventRepo) ListByBatch(batchID string) ([]*entity.LotEvent, error) {
	query := `
		SELECT id, lot_id, COALESCE(batch_id, ''), event_type, quantity, balance_after, reference, notes, created_at, COALESCE(created_by, '')
		FROM lot_events WHERE batch_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, batchID)
	if err != nil {
		return nil, fmt.Errorf("list lot events by batch: %w", err)
	}
	return r.scanAll(rows)
}

func (r *LotEventRepo) scanAll(rows pgx.Rows) ([]*entity.LotEvent, error) {
	defer rows.Close()
	var out []*entity.LotEvent
	for rows.Next() {
		var e entity.LotEvent
		if err := rows.Scan(
			&e.ID, &e.LotID, &e.BatchID, &e.EventType, &e.Quantity,
			&e.BalanceAfter, &e.Reference, &e.Notes, &e.CreatedAt, &e.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan lot event: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
