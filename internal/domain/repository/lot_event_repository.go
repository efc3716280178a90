package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// LotEventRepository define el puerto del ledger append-only de lotes.
// Solo inserta y lee: los eventos nunca se modifican ni se borran.
type LotEventRepository interface {
	Append(event *entity.LotEvent) error
	ListByLot(lotID string) ([]*entity.LotEvent, error)
	ListByBatch(batchID string) ([]*entity.LotEvent, error)
}
