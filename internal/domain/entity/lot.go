package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote físico de inventario.
const (
	LotStatusAvailable  = "available"
	LotStatusQuarantine = "quarantine"
	LotStatusDepleted   = "depleted"
	LotStatusRecalled   = "recalled"
)

// Lot representa un lote físico recibido de un material (una entrega de proveedor).
// CurrentBalance es una proyección derivada del ledger de eventos: siempre debe ser
// igual a la suma con signo de sus LotEvents. Solo los eventos lo mueven.
type Lot struct {
	ID               string
	MaterialID       string
	SupplierLotCode  string // código del lote del proveedor, para trazabilidad externa
	QuantityReceived decimal.Decimal
	CurrentBalance   decimal.Decimal
	Unit             string
	ReceivedDate     time.Time
	ExpiryDate       *time.Time
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
