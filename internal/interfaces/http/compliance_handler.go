package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appcompliance "github.com/jhoicas/Produccion-api/internal/application/compliance"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
)

// ComplianceHandler maneja el tablero de tareas de cumplimiento.
type ComplianceHandler struct {
	uc *appcompliance.UseCase
}

// NewComplianceHandler construye el handler.
func NewComplianceHandler(uc *appcompliance.UseCase) *ComplianceHandler {
	return &ComplianceHandler{uc: uc}
}

// ListStatuses deriva el estado de todas las tareas activas a ahora.
func (h *ComplianceHandler) ListStatuses(c *fiber.Ctx) error {
	statuses, err := h.uc.ListStatuses(c.Context(), time.Now())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(statuses), "tasks": statuses})
}

// Complete registra una ejecución completada de la tarea.
func (h *ComplianceHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	log, err := h.uc.RecordCompletion(c.Context(), c.Params("id"), requestUser(c), in.Notes)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}
