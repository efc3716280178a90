package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de evento del ledger de lotes (append-only).
const (
	LotEventReceive    = "receive"
	LotEventConsume    = "consume"
	LotEventAdjust     = "adjust"
	LotEventScrap      = "scrap"
	LotEventReturn     = "return"
	LotEventQuarantine = "quarantine"
	LotEventRelease    = "release"
)

// LotEvent es una entrada inmutable del ledger de un lote. Nunca se modifica ni
// se borra: las correcciones son eventos nuevos. Quantity lleva signo (positivo
// entra, negativo sale); BalanceAfter es el saldo resultante del lote.
type LotEvent struct {
	ID           string
	LotID        string
	BatchID      string // opcional: batch asociado (consume)
	EventType    string
	Quantity     decimal.Decimal
	BalanceAfter decimal.Decimal
	Reference    string
	Notes        string
	CreatedAt    time.Time
	CreatedBy    string
}

// MovesBalance indica si el evento mueve saldo. Los tipos quarantine y release
// no lo mueven: son cambios de estado del lote.
func (e *LotEvent) MovesBalance() bool {
	return e.EventType != LotEventQuarantine && e.EventType != LotEventRelease
}
