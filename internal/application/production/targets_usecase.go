package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	domainprod "github.com/jhoicas/Produccion-api/internal/domain/production"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// TargetsUseCase calcula las cantidades objetivo de un batch (escalado de
// receta + dosificación de cura) y registra mediciones reales con su veredicto
// de tolerancia. Cada medición sobreescribe la anterior: un valor vigente por
// material por batch.
type TargetsUseCase struct {
	batchRepo   repository.BatchRepository
	recipeRepo  repository.RecipeRepository
	actualsRepo repository.BatchIngredientActualRepository
	cureConfig  CureConfigSource
}

// NewTargetsUseCase construye el caso de uso.
func NewTargetsUseCase(
	batchRepo repository.BatchRepository,
	recipeRepo repository.RecipeRepository,
	actualsRepo repository.BatchIngredientActualRepository,
	cureConfig CureConfigSource,
) *TargetsUseCase {
	return &TargetsUseCase{
		batchRepo:   batchRepo,
		recipeRepo:  recipeRepo,
		actualsRepo: actualsRepo,
		cureConfig:  cureConfig,
	}
}

// thresholds lee los umbrales de cura con fallback a los defaults embebidos.
func (uc *TargetsUseCase) thresholds() domainprod.CureThresholds {
	t, err := uc.cureConfig.CureThresholds()
	if err != nil {
		return domainprod.DefaultCureThresholds()
	}
	return t
}

// ingredientTarget es el objetivo calculado de un ingrediente del batch.
type ingredientTarget struct {
	ingredient   *entity.RecipeIngredient
	targetAmount decimal.Decimal
	requiredCure decimal.Decimal
	baseMass     decimal.Decimal
}

// buildTargets aplica el pipeline de objetivos a todos los ingredientes:
//  1. factor de escalado del batch;
//  2. ingredientes no-cura: cantidad × factor en su unidad declarada;
//  3. masa base de curado = suma de no-cura de clase masa en gramos, con
//     fallback a la masa de entrada y a la masa base escalada de la receta;
//  4. ingredientes de cura: dosis por ppm, en gramos.
func buildTargets(batch *entity.Batch, recipe *entity.Recipe, thresholds domainprod.CureThresholds) (map[string]ingredientTarget, decimal.Decimal, error) {
	inputGrams := domainprod.ToGrams(batch.InputMass, batch.InputMassUnit)
	factor, err := domainprod.ScalingFactor(inputGrams, recipe.BaseReferenceMass, batch.ScalingFactor)
	if err != nil {
		return nil, decimal.Zero, err
	}

	targets := make(map[string]ingredientTarget, len(recipe.Ingredients))
	nonCureMassSum := decimal.Zero
	for _, ing := range recipe.Ingredients {
		if ing.IsCure {
			continue
		}
		target := domainprod.ScaleIngredient(ing, factor, "")
		targets[ing.MaterialID] = ingredientTarget{ingredient: ing, targetAmount: target}
		if entity.UnitClass(ing.Unit) == entity.UnitClassMass {
			nonCureMassSum = nonCureMassSum.Add(domainprod.ToGrams(target, ing.Unit))
		}
	}

	baseMass := domainprod.CureBaseMass(nonCureMassSum, inputGrams, recipe.BaseReferenceMass, factor)
	for _, ing := range recipe.Ingredients {
		if !ing.IsCure {
			continue
		}
		targetPpm := domainprod.FirstPositive(ing.TargetPpm, thresholds.TargetPpm)
		required := domainprod.RequiredCureGrams(baseMass, ing.CureType, targetPpm)
		targets[ing.MaterialID] = ingredientTarget{
			ingredient:   ing,
			targetAmount: required,
			requiredCure: required,
			baseMass:     baseMass,
		}
	}
	return targets, factor, nil
}

// ComputeTargets calcula y persiste los objetivos de todos los ingredientes
// del batch. Las mediciones ya registradas se conservan y se reevalúan contra
// el objetivo nuevo, con la tolerancia efectiva que se aplicó al medir.
// Devuelve el factor de escalado aplicado.
func (uc *TargetsUseCase) ComputeTargets(ctx context.Context, batchID string) (decimal.Decimal, error) {
	batch, recipe, err := uc.loadBatchRecipe(batchID)
	if err != nil {
		return decimal.Zero, err
	}
	thresholds := uc.thresholds()
	targets, factor, err := buildTargets(batch, recipe, thresholds)
	if err != nil {
		return decimal.Zero, err
	}

	now := time.Now()
	for materialID, t := range targets {
		row, err := uc.actualsRepo.Get(batchID, materialID)
		if err != nil {
			return decimal.Zero, err
		}
		if row == nil {
			row = &entity.BatchIngredientActual{
				ID:         uuid.New().String(),
				BatchID:    batchID,
				MaterialID: materialID,
			}
		}
		row.TargetAmount = t.targetAmount
		row.Unit = targetUnit(t.ingredient)
		row.CureRequiredGrams = t.requiredCure
		row.UpdatedAt = now
		if row.ActualAmount != nil {
			applyMeasurement(row, t, *row.ActualAmount, row.TolerancePercent, thresholds)
		}
		if err := uc.actualsRepo.Upsert(row); err != nil {
			return decimal.Zero, err
		}
	}
	return factor, nil
}

// MeasurementInput entrada para registrar la cantidad realmente pesada.
type MeasurementInput struct {
	BatchID           string
	MaterialID        string
	ActualAmount      decimal.Decimal
	Unit              string // vacío = unidad declarada del ingrediente
	ToleranceOverride decimal.Decimal
	UserID            string
}

// RecordMeasurement registra la medición de un ingrediente: evalúa tolerancia
// contra el objetivo y, si el ingrediente es de cura, calcula el ppm alcanzado
// y su estado de seguridad. Sobreescribe la medición anterior si existe.
func (uc *TargetsUseCase) RecordMeasurement(ctx context.Context, input MeasurementInput) (*entity.BatchIngredientActual, error) {
	if input.BatchID == "" || input.MaterialID == "" || input.ActualAmount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	batch, recipe, err := uc.loadBatchRecipe(input.BatchID)
	if err != nil {
		return nil, err
	}
	if batch.Status != entity.BatchStatusInProgress {
		return nil, domain.ErrInvalidTransition
	}
	thresholds := uc.thresholds()
	targets, _, err := buildTargets(batch, recipe, thresholds)
	if err != nil {
		return nil, err
	}
	t, ok := targets[input.MaterialID]
	if !ok {
		return nil, domain.ErrNotFound
	}

	actual := input.ActualAmount
	if input.Unit != "" && input.Unit != targetUnit(t.ingredient) {
		actual = domainprod.ConvertUnit(actual, input.Unit, targetUnit(t.ingredient))
	}

	now := time.Now()
	row, err := uc.actualsRepo.Get(input.BatchID, input.MaterialID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		row = &entity.BatchIngredientActual{
			ID:         uuid.New().String(),
			BatchID:    input.BatchID,
			MaterialID: input.MaterialID,
		}
	}
	row.TargetAmount = t.targetAmount
	row.Unit = targetUnit(t.ingredient)
	row.CureRequiredGrams = t.requiredCure
	applyMeasurement(row, t, actual, input.ToleranceOverride, thresholds)
	row.MeasuredAt = &now
	row.MeasuredBy = input.UserID
	row.UpdatedAt = now

	if err := uc.actualsRepo.Upsert(row); err != nil {
		return nil, err
	}
	return row, nil
}

// ListByBatch devuelve los objetivos y mediciones vigentes del batch.
func (uc *TargetsUseCase) ListByBatch(ctx context.Context, batchID string) ([]*entity.BatchIngredientActual, error) {
	if batchID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.actualsRepo.ListByBatch(batchID)
}

func (uc *TargetsUseCase) loadBatchRecipe(batchID string) (*entity.Batch, *entity.Recipe, error) {
	batch, err := uc.batchRepo.GetByID(batchID)
	if err != nil || batch == nil {
		return nil, nil, domain.ErrNotFound
	}
	recipe, err := uc.recipeRepo.GetByID(batch.RecipeID)
	if err != nil || recipe == nil {
		return nil, nil, domain.ErrNotFound
	}
	return batch, recipe, nil
}

// applyMeasurement evalúa tolerancia y, para curas, ppm alcanzado y estado.
// La tolerancia efectiva queda persistida en la fila para reaplicarla en
// reevaluaciones posteriores.
func applyMeasurement(row *entity.BatchIngredientActual, t ingredientTarget, actual, toleranceOverride decimal.Decimal, thresholds domainprod.CureThresholds) {
	row.ActualAmount = &actual
	tolerance := domainprod.ResolveTolerance(t.ingredient.TolerancePercentage, toleranceOverride)
	row.TolerancePercent = tolerance
	result := domainprod.EvaluateTolerance(actual, row.TargetAmount, tolerance)
	inTol := result.InTolerance
	row.InTolerance = &inTol

	if t.ingredient.IsCure {
		actualGrams := domainprod.ToGrams(actual, row.Unit)
		totalMass := t.baseMass.Add(actualGrams)
		row.CurePpm = domainprod.AchievedPpm(actualGrams, totalMass, t.ingredient.CureType)
		row.CureStatus = domainprod.EvaluateCureStatus(row.CurePpm, thresholds)
	}
}

// targetUnit unidad en la que se expresa el objetivo: las curas siempre en
// gramos (la dosis se calcula en gramos), el resto en su unidad declarada.
func targetUnit(ing *entity.RecipeIngredient) string {
	if ing.IsCure {
		return entity.UnitGrams
	}
	return ing.Unit
}
