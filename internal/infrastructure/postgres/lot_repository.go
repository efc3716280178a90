package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

const lotColumns = `id, material_id, supplier_lot_code, quantity_received, current_balance,
		unit, received_date, expiry_date, status, created_at, updated_at`

// LotRepo implementación de LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.MaterialID, lot.SupplierLotCode, lot.QuantityReceived, lot.CurrentBalance,
		lot.Unit, lot.ReceivedDate, lot.ExpiryDate, lot.Status, lot.CreatedAt, lot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por id; nil si no existe.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get lot")
}

// GetForUpdate obtiene el lote bloqueando la fila (SELECT FOR UPDATE).
func (r *LotRepo) GetForUpdate(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get lot for update")
}

// ListByMaterial lista los lotes de un material, más recientes primero.
func (r *LotRepo) ListByMaterial(materialID string, limit, offset int) ([]*entity.Lot, error) {
	query := `
		SELECT ` + lotColumns + ` FROM lots
		WHERE material_id = $1
		ORDER BY received_date DESC, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, materialID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	return r.scanAll(rows)
}

// ListAvailableForUpdate devuelve los lotes disponibles con saldo positivo en
// orden FIFO (received_date ascendente, empates por id) bloqueando las filas.
// Serializa asignaciones concurrentes del mismo material.
func (r *LotRepo) ListAvailableForUpdate(materialID string) ([]*entity.Lot, error) {
	query := `
		SELECT ` + lotColumns + ` FROM lots
		WHERE material_id = $1 AND status = $2 AND current_balance > 0
		ORDER BY received_date ASC, id ASC
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, materialID, entity.LotStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("list available lots for update: %w", err)
	}
	return r.scanAll(rows)
}

// UpdateBalance actualiza la proyección de saldo y el estado del lote.
func (r *LotRepo) UpdateBalance(lotID string, balance decimal.Decimal, status string) error {
	query := `UPDATE lots SET current_balance = $2, status = $3, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, lotID, balance, status)
	if err != nil {
		return fmt.Errorf("update lot balance: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado del lote (cuarentena, liberación).
func (r *LotRepo) UpdateStatus(lotID string, status string) error {
	query := `UPDATE lots SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, lotID, status)
	if err != nil {
		return fmt.Errorf("update lot status: %w", err)
	}
	return nil
}

func (r *LotRepo) scanOne(row pgx.Row, op string) (*entity.Lot, error) {
	var l entity.Lot
	err := row.Scan(
		&l.ID, &l.MaterialID, &l.SupplierLotCode, &l.QuantityReceived, &l.CurrentBalance,
		&l.Unit, &l.ReceivedDate, &l.ExpiryDate, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &l, nil
}

func (r *LotRepo) scanAll(rows pgx.Rows) ([]*entity.Lot, error) {
	defer rows.Close()
	var out []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(
			&l.ID, &l.MaterialID, &l.SupplierLotCode, &l.QuantityReceived, &l.CurrentBalance,
			&l.Unit, &l.ReceivedDate, &l.ExpiryDate, &l.Status, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
