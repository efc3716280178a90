package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para lotes físicos.
// Usado dentro de transacciones para garantizar consistencia del allocator.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	ListByMaterial(materialID string, limit, offset int) ([]*entity.Lot, error)
	// ListAvailableForUpdate devuelve los lotes disponibles con saldo positivo
	// de un material, ordenados por received_date ascendente (empates por id),
	// bloqueando las filas (SELECT FOR UPDATE) para serializar asignaciones
	// concurrentes del mismo material.
	ListAvailableForUpdate(materialID string) ([]*entity.Lot, error)
	// GetForUpdate bloquea la fila del lote para operaciones de ajuste.
	GetForUpdate(id string) (*entity.Lot, error)
	UpdateBalance(lotID string, balance decimal.Decimal, status string) error
	UpdateStatus(lotID string, status string) error
}
