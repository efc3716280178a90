package allocation

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que los descuentos de saldo, los
// eventos del ledger y los registros de uso de una asignación se confirmen
// juntos o ninguno (atomicidad del allocator FIFO).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		lotRepo repository.LotRepository,
		eventRepo repository.LotEventRepository,
		usageRepo repository.BatchLotUsageRepository,
	) error) error
}
