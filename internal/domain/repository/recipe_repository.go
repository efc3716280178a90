package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para recetas y sus
// ingredientes. GetByID devuelve la receta con ingredientes ordenados por
// display_order.
type RecipeRepository interface {
	Create(recipe *entity.Recipe) error
	GetByID(id string) (*entity.Recipe, error)
	List(limit, offset int) ([]*entity.Recipe, error)
	Update(recipe *entity.Recipe) error
}
