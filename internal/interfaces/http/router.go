package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/allocation"
	appcompliance "github.com/jhoicas/Produccion-api/internal/application/compliance"
	appproduction "github.com/jhoicas/Produccion-api/internal/application/production"
	appquality "github.com/jhoicas/Produccion-api/internal/application/quality"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MaterialUC   *usecase.MaterialUseCase
	RecipeUC     *usecase.RecipeUseCase
	LotUC        *allocation.LotUseCase
	AllocateUC   *allocation.AllocateUseCase
	BatchUC      *appproduction.BatchUseCase
	TargetsUC    *appproduction.TargetsUseCase
	QualityUC    *appquality.UseCase
	ComplianceUC *appcompliance.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Materiales
	materials := api.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)

	// Recetas
	recipes := api.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/", recipeHandler.List)
	recipes.Get("/:id", recipeHandler.GetByID)

	// Lotes físicos (recepción, ajustes, cuarentena, reconciliación)
	lots := api.Group("/lots")
	lotHandler := NewLotHandler(deps.LotUC)
	lots.Post("/", lotHandler.Receive)
	lots.Post("/:id/adjust", lotHandler.Adjust)
	lots.Post("/:id/quarantine", lotHandler.Quarantine)
	lots.Post("/:id/reconcile", lotHandler.Reconcile)

	// Batches de producción
	batches := api.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC, deps.TargetsUC, deps.AllocateUC)
	batches.Post("/", batchHandler.Create)
	batches.Get("/", batchHandler.List)
	batches.Get("/:id", batchHandler.GetByID)
	batches.Post("/:id/targets", batchHandler.ComputeTargets)
	batches.Get("/:id/ingredients", batchHandler.ListIngredients)
	batches.Post("/:id/measurements", batchHandler.RecordMeasurement)
	batches.Post("/:id/allocations", batchHandler.Allocate)
	batches.Post("/:id/complete", batchHandler.Complete)
	batches.Post("/:id/cancel", batchHandler.Cancel)
	batches.Post("/:id/release", batchHandler.Release)
	batches.Post("/:id/recall", batchHandler.Recall)

	// Calidad
	qa := api.Group("/batches/:id/qa")
	qaHandler := NewQAHandler(deps.QualityUC)
	qa.Post("/checks", qaHandler.RecordCheck)
	qa.Get("/stages", qaHandler.StageProgress)

	// Cumplimiento
	compliance := api.Group("/compliance")
	complianceHandler := NewComplianceHandler(deps.ComplianceUC)
	compliance.Get("/status", complianceHandler.ListStatuses)
	compliance.Post("/tasks/:id/complete", complianceHandler.Complete)
}
