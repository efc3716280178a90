package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	appquality "github.com/jhoicas/Produccion-api/internal/application/quality"
)

// QAHandler maneja checkpoints de calidad y avance por etapa.
type QAHandler struct {
	uc *appquality.UseCase
}

// NewQAHandler construye el handler.
func NewQAHandler(uc *appquality.UseCase) *QAHandler {
	return &QAHandler{uc: uc}
}

// RecordCheck guarda el resultado de un checkpoint para el batch.
func (h *QAHandler) RecordCheck(c *fiber.Ctx) error {
	var in dto.RecordCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	check, err := h.uc.RecordCheck(c.Context(), appquality.RecordCheckInput{
		BatchID:      c.Params("id"),
		CheckpointID: in.CheckpointID,
		Status:       in.Status,
		Metadata:     in.Metadata,
		Notes:        in.Notes,
		UserID:       requestUser(c),
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(check)
}

// StageProgress devuelve el rollup por etapa del batch.
func (h *QAHandler) StageProgress(c *fiber.Ctx) error {
	progress, err := h.uc.StageProgress(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(progress)
}
