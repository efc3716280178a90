package allocation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	domaininv "github.com/jhoicas/Produccion-api/internal/domain/inventory"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// LotUseCase gestiona el ciclo de vida de los lotes físicos: recepción,
// ajustes, merma, cuarentena y liberación. Todo cambio de saldo pasa por el
// ledger de eventos dentro de una transacción.
type LotUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	lotRepo      repository.LotRepository
	eventRepo    repository.LotEventRepository
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	lotRepo repository.LotRepository,
	eventRepo repository.LotEventRepository,
) *LotUseCase {
	return &LotUseCase{
		txRunner:     txRunner,
		materialRepo: materialRepo,
		lotRepo:      lotRepo,
		eventRepo:    eventRepo,
	}
}

// ReceiveInput entrada para recibir un lote de proveedor.
type ReceiveInput struct {
	MaterialID      string
	SupplierLotCode string
	Quantity        decimal.Decimal
	Unit            string
	ReceivedDate    time.Time
	ExpiryDate      *time.Time
	UserID          string
}

// Receive crea el lote y su evento receive inicial en la misma transacción.
func (uc *LotUseCase) Receive(ctx context.Context, input ReceiveInput) (*entity.Lot, error) {
	if input.MaterialID == "" || !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materialRepo.GetByID(input.MaterialID)
	if err != nil || material == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	receivedDate := input.ReceivedDate
	if receivedDate.IsZero() {
		receivedDate = now
	}
	lot := &entity.Lot{
		ID:               uuid.New().String(),
		MaterialID:       input.MaterialID,
		SupplierLotCode:  input.SupplierLotCode,
		QuantityReceived: input.Quantity,
		CurrentBalance:   input.Quantity,
		Unit:             material.CanonicalUnit,
		ReceivedDate:     receivedDate,
		ExpiryDate:       input.ExpiryDate,
		Status:           entity.LotStatusAvailable,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	err = uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		eventRepo repository.LotEventRepository,
		_ repository.BatchLotUsageRepository,
	) error {
		if err := lotRepo.Create(lot); err != nil {
			return err
		}
		return eventRepo.Append(&entity.LotEvent{
			ID:           uuid.New().String(),
			LotID:        lot.ID,
			EventType:    entity.LotEventReceive,
			Quantity:     input.Quantity,
			BalanceAfter: input.Quantity,
			CreatedAt:    now,
			CreatedBy:    input.UserID,
		})
	})
	if err != nil {
		return nil, err
	}
	return lot, nil
}

// AdjustInput entrada para un ajuste manual de saldo (merma, conteo físico,
// devolución). Quantity lleva signo; el tipo de evento lo describe.
type AdjustInput struct {
	LotID     string
	EventType string // adjust, scrap, return
	Quantity  decimal.Decimal
	Notes     string
	UserID    string
}

// Adjust aplica un ajuste con signo al saldo del lote. El saldo resultante no
// puede ser negativo ni superar la cantidad recibida. Las correcciones son
// eventos nuevos: nunca se edita un evento existente.
func (uc *LotUseCase) Adjust(ctx context.Context, input AdjustInput) error {
	switch input.EventType {
	case entity.LotEventAdjust, entity.LotEventScrap, entity.LotEventReturn:
	default:
		return domain.ErrInvalidInput
	}
	if input.LotID == "" || input.Quantity.IsZero() {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		eventRepo repository.LotEventRepository,
		_ repository.BatchLotUsageRepository,
	) error {
		lot, err := lotRepo.GetForUpdate(input.LotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		newBalance := lot.CurrentBalance.Add(input.Quantity)
		if newBalance.LessThan(decimal.Zero) || newBalance.GreaterThan(lot.QuantityReceived) {
			return domain.ErrConflict
		}
		status := lot.Status
		if newBalance.IsZero() && status == entity.LotStatusAvailable {
			status = entity.LotStatusDepleted
		}
		if err := lotRepo.UpdateBalance(lot.ID, newBalance, status); err != nil {
			return err
		}
		return eventRepo.Append(&entity.LotEvent{
			ID:           uuid.New().String(),
			LotID:        lot.ID,
			EventType:    input.EventType,
			Quantity:     input.Quantity,
			BalanceAfter: newBalance,
			Notes:        input.Notes,
			CreatedAt:    now,
			CreatedBy:    input.UserID,
		})
	})
}

// SetQuarantine pone o saca un lote de cuarentena. Es un cambio de estado:
// el evento correspondiente no mueve saldo, solo deja rastro en el ledger.
func (uc *LotUseCase) SetQuarantine(ctx context.Context, lotID string, quarantine bool, userID string) error {
	if lotID == "" {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		lotRepo repository.LotRepository,
		eventRepo repository.LotEventRepository,
		_ repository.BatchLotUsageRepository,
	) error {
		lot, err := lotRepo.GetForUpdate(lotID)
		if err != nil {
			return err
		}
		if lot == nil {
			return domain.ErrNotFound
		}
		eventType := entity.LotEventQuarantine
		status := entity.LotStatusQuarantine
		if !quarantine {
			eventType = entity.LotEventRelease
			status = entity.LotStatusAvailable
			if lot.CurrentBalance.IsZero() {
				status = entity.LotStatusDepleted
			}
		}
		if err := lotRepo.UpdateStatus(lot.ID, status); err != nil {
			return err
		}
		return eventRepo.Append(&entity.LotEvent{
			ID:           uuid.New().String(),
			LotID:        lot.ID,
			EventType:    eventType,
			Quantity:     decimal.Zero,
			BalanceAfter: lot.CurrentBalance,
			CreatedAt:    now,
			CreatedBy:    userID,
		})
	})
}

// Reconcile compara el saldo cacheado del lote contra la suma de su ledger y,
// si difieren, corrige la proyección desde el ledger (fuente de verdad).
// Devuelve el saldo autoritativo y si hubo corrección.
func (uc *LotUseCase) Reconcile(ctx context.Context, lotID string) (decimal.Decimal, bool, error) {
	lot, err := uc.lotRepo.GetByID(lotID)
	if err != nil || lot == nil {
		return decimal.Zero, false, domain.ErrNotFound
	}
	events, err := uc.eventRepo.ListByLot(lotID)
	if err != nil {
		return decimal.Zero, false, err
	}
	ledger, err := domaininv.Reconcile(lot, events)
	if err == nil {
		return ledger, false, nil
	}
	status := lot.Status
	if ledger.IsZero() && status == entity.LotStatusAvailable {
		status = entity.LotStatusDepleted
	}
	if err := uc.lotRepo.UpdateBalance(lot.ID, ledger, status); err != nil {
		return ledger, false, err
	}
	return ledger, true, nil
}
