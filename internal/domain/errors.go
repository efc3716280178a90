package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrInsufficientStock   = errors.New("stock insuficiente en lotes disponibles")
	ErrInvalidScaling      = errors.New("factor de escalado no positivo")
	ErrBatchNotCompletable = errors.New("el batch no cumple los checkpoints obligatorios")
	ErrInvalidTransition   = errors.New("transición de estado no permitida")
	ErrLedgerMismatch      = errors.New("saldo del lote no coincide con su ledger de eventos")
)
