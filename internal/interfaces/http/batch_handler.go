package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/allocation"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	appproduction "github.com/jhoicas/Produccion-api/internal/application/production"
)

// BatchHandler maneja el ciclo de vida del batch, sus objetivos calculados,
// mediciones y asignaciones de stock.
type BatchHandler struct {
	batchUC    *appproduction.BatchUseCase
	targetsUC  *appproduction.TargetsUseCase
	allocateUC *allocation.AllocateUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(
	batchUC *appproduction.BatchUseCase,
	targetsUC *appproduction.TargetsUseCase,
	allocateUC *allocation.AllocateUseCase,
) *BatchHandler {
	return &BatchHandler{batchUC: batchUC, targetsUC: targetsUC, allocateUC: allocateUC}
}

// Create abre un batch sobre una receta con la masa de entrada dada.
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.batchUC.Create(c.Context(), appproduction.CreateBatchInput{
		RecipeID:      in.RecipeID,
		InputMass:     in.InputMass,
		InputMassUnit: in.InputMassUnit,
		ScalingFactor: in.ScalingFactor,
		Notes:         in.Notes,
		UserID:        requestUser(c),
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(batch)
}

// List lista batches paginados.
func (h *BatchHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err == nil {
		page.DefaultPage()
	}
	batches, err := h.batchUC.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(batches), "batches": batches})
}

// GetByID devuelve un batch.
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
	batch, err := h.batchUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(batch)
}

// ComputeTargets calcula y persiste los objetivos de todos los ingredientes.
func (h *BatchHandler) ComputeTargets(c *fiber.Ctx) error {
	factor, err := h.targetsUC.ComputeTargets(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"scaling_factor": factor})
}

// ListIngredients devuelve objetivos y mediciones vigentes del batch.
func (h *BatchHandler) ListIngredients(c *fiber.Ctx) error {
	rows, err := h.targetsUC.ListByBatch(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "ingredients": rows})
}

// RecordMeasurement registra la cantidad realmente pesada de un ingrediente.
func (h *BatchHandler) RecordMeasurement(c *fiber.Ctx) error {
	var in dto.MeasurementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	row, err := h.targetsUC.RecordMeasurement(c.Context(), appproduction.MeasurementInput{
		BatchID:           c.Params("id"),
		MaterialID:        in.MaterialID,
		ActualAmount:      in.ActualAmount,
		Unit:              in.Unit,
		ToleranceOverride: in.TolerancePercent,
		UserID:            requestUser(c),
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(row)
}

// Allocate consume stock FIFO del material para el batch.
func (h *BatchHandler) Allocate(c *fiber.Ctx) error {
	var in dto.AllocateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	lines, err := h.allocateUC.Allocate(c.Context(), allocation.AllocationInput{
		BatchID:    c.Params("id"),
		MaterialID: in.MaterialID,
		Quantity:   in.Quantity,
		Reference:  in.Reference,
		UserID:     requestUser(c),
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"allocations": lines})
}

// Complete marca el batch como completado si la calidad lo permite.
func (h *BatchHandler) Complete(c *fiber.Ctx) error {
	batch, err := h.batchUC.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(batch)
}

// Cancel anula un batch en curso.
func (h *BatchHandler) Cancel(c *fiber.Ctx) error {
	batch, err := h.batchUC.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(batch)
}

// Release libera un batch completado con veredicto approved o hold.
func (h *BatchHandler) Release(c *fiber.Ctx) error {
	var in dto.ReleaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.batchUC.Release(c.Context(), c.Params("id"), in.ReleaseStatus)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(batch)
}

// Recall retira del mercado un batch liberado.
func (h *BatchHandler) Recall(c *fiber.Ctx) error {
	batch, err := h.batchUC.Recall(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(batch)
}
