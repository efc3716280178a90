package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	domainprod "github.com/jhoicas/Produccion-api/internal/domain/production"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// RecipeUseCase casos de uso para recetas maestras y sus ingredientes.
type RecipeUseCase struct {
	repo         repository.RecipeRepository
	materialRepo repository.MaterialRepository
}

// NewRecipeUseCase construye el caso de uso.
func NewRecipeUseCase(repo repository.RecipeRepository, materialRepo repository.MaterialRepository) *RecipeUseCase {
	return &RecipeUseCase{repo: repo, materialRepo: materialRepo}
}

// Create crea la receta con su lista ordenada de ingredientes. Valida masa
// base positiva, materiales existentes y que los ingredientes de cura tengan
// un tipo de agente conocido.
func (uc *RecipeUseCase) Create(in dto.CreateRecipeRequest) (*entity.Recipe, error) {
	if in.Name == "" || !in.BaseReferenceMass.GreaterThan(decimal.Zero) || len(in.Ingredients) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	recipe := &entity.Recipe{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Description:       in.Description,
		BaseReferenceMass: in.BaseReferenceMass,
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for i, ingIn := range in.Ingredients {
		material, err := uc.materialRepo.GetByID(ingIn.MaterialID)
		if err != nil || material == nil {
			return nil, domain.ErrNotFound
		}
		if ingIn.IsCure && domainprod.NitriteFraction(ingIn.CureType).IsZero() {
			return nil, domain.ErrInvalidInput
		}
		if !ingIn.IsCure && !ingIn.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		tolerance := ingIn.TolerancePercentage
		if !tolerance.GreaterThan(decimal.Zero) {
			tolerance = domainprod.DefaultTolerancePercentage
		}
		recipe.Ingredients = append(recipe.Ingredients, &entity.RecipeIngredient{
			ID:                  uuid.New().String(),
			RecipeID:            recipe.ID,
			MaterialID:          ingIn.MaterialID,
			Quantity:            ingIn.Quantity,
			Unit:                ingIn.Unit,
			TolerancePercentage: tolerance,
			IsCure:              ingIn.IsCure,
			CureType:            ingIn.CureType,
			TargetPpm:           ingIn.TargetPpm,
			IsCritical:          ingIn.IsCritical,
			DisplayOrder:        i,
		})
	}
	if err := uc.repo.Create(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// GetByID devuelve la receta con ingredientes ordenados.
func (uc *RecipeUseCase) GetByID(id string) (*entity.Recipe, error) {
	recipe, err := uc.repo.GetByID(id)
	if err != nil || recipe == nil {
		return nil, domain.ErrNotFound
	}
	return recipe, nil
}

// List lista recetas paginadas.
func (uc *RecipeUseCase) List(limit, offset int) ([]*entity.Recipe, error) {
	return uc.repo.List(limit, offset)
}
