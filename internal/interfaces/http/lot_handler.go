package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/allocation"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
)

// LotHandler maneja recepción, ajustes y cuarentena de lotes físicos.
type LotHandler struct {
	uc *allocation.LotUseCase
}

// NewLotHandler construye el handler.
func NewLotHandler(uc *allocation.LotUseCase) *LotHandler {
	return &LotHandler{uc: uc}
}

// Receive registra la llegada de un lote de proveedor.
func (h *LotHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceiveLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var receivedDate time.Time
	if in.ReceivedDate != nil {
		receivedDate = *in.ReceivedDate
	}
	lot, err := h.uc.Receive(c.Context(), allocation.ReceiveInput{
		MaterialID:      in.MaterialID,
		SupplierLotCode: in.SupplierLotCode,
		Quantity:        in.Quantity,
		ReceivedDate:    receivedDate,
		ExpiryDate:      in.ExpiryDate,
		UserID:          requestUser(c),
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lot)
}

// Adjust aplica un ajuste con signo al saldo del lote.
func (h *LotHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.Adjust(c.Context(), allocation.AdjustInput{
		LotID:     c.Params("id"),
		EventType: in.EventType,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		UserID:    requestUser(c),
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Quarantine pone o saca el lote de cuarentena.
func (h *LotHandler) Quarantine(c *fiber.Ctx) error {
	var in dto.QuarantineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetQuarantine(c.Context(), c.Params("id"), in.Quarantine, requestUser(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// Reconcile verifica el saldo cacheado contra el ledger y lo corrige si drifteó.
func (h *LotHandler) Reconcile(c *fiber.Ctx) error {
	balance, corrected, err := h.uc.Reconcile(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"balance": balance, "corrected": corrected})
}
