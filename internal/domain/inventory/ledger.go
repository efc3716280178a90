// Package inventory contiene servicios de dominio puros sobre el ledger de
// lotes. El ledger de eventos es la fuente de verdad del saldo; el
// current_balance del lote es solo una proyección materializada.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// BalanceFromEvents reconstruye el saldo de un lote como la suma con signo de
// sus eventos que mueven saldo (receive incluido; quarantine/release no).
func BalanceFromEvents(events []*entity.LotEvent) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range events {
		if e.MovesBalance() {
			balance = balance.Add(e.Quantity)
		}
	}
	return balance
}

// Reconcile verifica que el saldo cacheado del lote coincida con su ledger.
// Una discrepancia es un defecto de integridad de datos, no un error normal:
// devuelve el saldo autoritativo del ledger junto con ErrLedgerMismatch para
// que el caller corrija la proyección en vez de confiar en la caché.
func Reconcile(lot *entity.Lot, events []*entity.LotEvent) (decimal.Decimal, error) {
	ledger := BalanceFromEvents(events)
	if !lot.CurrentBalance.Equal(ledger) {
		return ledger, domain.ErrLedgerMismatch
	}
	return ledger, nil
}
