package allocation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// AllocateUseCase consume lotes físicos FIFO (más antiguo primero) para
// satisfacer la cantidad que un batch necesita de un material. Toda la
// asignación es una unidad: si el stock disponible no alcanza, no se consume
// nada de ningún lote.
type AllocateUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	batchRepo    repository.BatchRepository
}

// NewAllocateUseCase construye el caso de uso.
func NewAllocateUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	batchRepo repository.BatchRepository,
) *AllocateUseCase {
	return &AllocateUseCase{
		txRunner:     txRunner,
		materialRepo: materialRepo,
		batchRepo:    batchRepo,
	}
}

// AllocationInput entrada para asignar stock a un batch.
type AllocationInput struct {
	BatchID    string
	MaterialID string
	Quantity   decimal.Decimal
	UserID     string
	Reference  string
}

// AllocationLine resultado por lote tocado por la asignación.
type AllocationLine struct {
	LotID      string
	Quantity   decimal.Decimal
	NewBalance decimal.Decimal
}

// Allocate recorre los lotes disponibles del material en orden FIFO
// (received_date ascendente, empates por id) dentro de una transacción con
// las filas bloqueadas, descuenta de cada lote min(restante, saldo) y emite
// por lote tocado un evento consume del ledger más un registro de uso
// batch-lote. Si al agotar los lotes elegibles queda faltante, devuelve
// ErrInsufficientStock y la transacción revierte completa.
func (uc *AllocateUseCase) Allocate(ctx context.Context, input AllocationInput) ([]AllocationLine, error) {
	if input.BatchID == "" || input.MaterialID == "" || !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materialRepo.GetByID(input.MaterialID)
	if err != nil || material == nil {
		return nil, domain.ErrNotFound
	}
	batch, err := uc.batchRepo.GetByID(input.BatchID)
	if err != nil || batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.Status != entity.BatchStatusInProgress {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	var lines []AllocationLine

	err = uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		eventRepo repository.LotEventRepository,
		usageRepo repository.BatchLotUsageRepository,
	) error {
		// Bloquea los lotes disponibles del material (SELECT FOR UPDATE):
		// serializa asignaciones concurrentes del mismo material.
		lots, err := lotRepo.ListAvailableForUpdate(input.MaterialID)
		if err != nil {
			return err
		}

		remaining := input.Quantity
		for _, lot := range lots {
			if !remaining.GreaterThan(decimal.Zero) {
				break
			}
			allocated := decimal.Min(remaining, lot.CurrentBalance)
			if !allocated.GreaterThan(decimal.Zero) {
				continue
			}
			newBalance := lot.CurrentBalance.Sub(allocated)
			remaining = remaining.Sub(allocated)

			status := entity.LotStatusAvailable
			if newBalance.IsZero() {
				status = entity.LotStatusDepleted
			}
			if err := lotRepo.UpdateBalance(lot.ID, newBalance, status); err != nil {
				return err
			}
			event := &entity.LotEvent{
				ID:           uuid.New().String(),
				LotID:        lot.ID,
				BatchID:      input.BatchID,
				EventType:    entity.LotEventConsume,
				Quantity:     allocated.Neg(),
				BalanceAfter: newBalance,
				Reference:    input.Reference,
				CreatedAt:    now,
				CreatedBy:    input.UserID,
			}
			if err := eventRepo.Append(event); err != nil {
				return err
			}
			usage := &entity.BatchLotUsage{
				ID:         uuid.New().String(),
				BatchID:    input.BatchID,
				LotID:      lot.ID,
				MaterialID: input.MaterialID,
				Quantity:   allocated,
				CreatedAt:  now,
			}
			if err := usageRepo.Create(usage); err != nil {
				return err
			}
			lines = append(lines, AllocationLine{LotID: lot.ID, Quantity: allocated, NewBalance: newBalance})
		}

		if remaining.GreaterThan(decimal.Zero) {
			// Faltante total: revierte todos los descuentos de esta asignación.
			return domain.ErrInsufficientStock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}
