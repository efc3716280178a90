package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiveLotRequest recepción de un lote de proveedor.
type ReceiveLotRequest struct {
	MaterialID      string          `json:"material_id"`
	SupplierLotCode string          `json:"supplier_lot_code"`
	Quantity        decimal.Decimal `json:"quantity"`
	ReceivedDate    *time.Time      `json:"received_date"` // nil = ahora
	ExpiryDate      *time.Time      `json:"expiry_date"`
}

// AdjustLotRequest ajuste manual de saldo con signo.
type AdjustLotRequest struct {
	EventType string          `json:"event_type"` // adjust, scrap, return
	Quantity  decimal.Decimal `json:"quantity"`
	Notes     string          `json:"notes"`
}

// QuarantineRequest pone o saca el lote de cuarentena.
type QuarantineRequest struct {
	Quarantine bool `json:"quarantine"`
}
