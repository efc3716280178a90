package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persiste la receta y sus ingredientes.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	query := `
		INSERT INTO recipes (id, name, description, base_reference_mass, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.Name, recipe.Description, recipe.BaseReferenceMass,
		recipe.Active, recipe.CreatedAt, recipe.UpdatedAt,
	)
	if err != nil {
		return mapDuplicate(err, "create recipe")
	}
	for _, ing := range recipe.Ingredients {
		if err := r.insertIngredient(ing); err != nil {
			return err
		}
	}
	return nil
}

func (r *RecipeRepo) insertIngredient(ing *entity.RecipeIngredient) error {
	query := `
		INSERT INTO recipe_ingredients
			(id, recipe_id, material_id, quantity, unit, tolerance_percentage,
			 is_cure, cure_type, target_ppm, is_critical, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.RecipeID, ing.MaterialID, ing.Quantity, ing.Unit, ing.TolerancePercentage,
		ing.IsCure, ing.CureType, ing.TargetPpm, ing.IsCritical, ing.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("create recipe ingredient: %w", err)
	}
	return nil
}

// GetByID devuelve la receta con sus ingredientes ordenados por display_order.
func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	query := `
		SELECT id, name, description, base_reference_mass, active, created_at, updated_at
		FROM recipes WHERE id = $1`
	var rec entity.Recipe
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.Name, &rec.Description, &rec.BaseReferenceMass,
		&rec.Active, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	ingQuery := `
		SELECT id, recipe_id, material_id, quantity, unit, tolerance_percentage,
		       is_cure, cure_type, target_ppm, is_critical, display_order
		FROM recipe_ingredients WHERE recipe_id = $1 ORDER BY display_order`
	rows, err := r.q.Query(context.Background(), ingQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ing entity.RecipeIngredient
		if err := rows.Scan(
			&ing.ID, &ing.RecipeID, &ing.MaterialID, &ing.Quantity, &ing.Unit, &ing.TolerancePercentage,
			&ing.IsCure, &ing.CureType, &ing.TargetPpm, &ing.IsCritical, &ing.DisplayOrder,
		); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		rec.Ingredients = append(rec.Ingredients, &ing)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List lista recetas sin ingredientes (vista liviana).
func (r *RecipeRepo) List(limit, offset int) ([]*entity.Recipe, error) {
	query := `
		SELECT id, name, description, base_reference_mass, active, created_at, updated_at
		FROM recipes ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()
	var out []*entity.Recipe
	for rows.Next() {
		var rec entity.Recipe
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Description, &rec.BaseReferenceMass,
			&rec.Active, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// Update actualiza la cabecera de la receta (no toca ingredientes).
func (r *RecipeRepo) Update(recipe *entity.Recipe) error {
	query := `
		UPDATE recipes SET name = $2, description = $3, base_reference_mass = $4, active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.Name, recipe.Description, recipe.BaseReferenceMass, recipe.Active, recipe.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	return nil
}
