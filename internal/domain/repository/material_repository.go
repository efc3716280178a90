package repository

import "github.com/jhoicas/Produccion-api/internal/domain/entity"

// MaterialRepository define el puerto de persistencia para Material.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	List(limit, offset int) ([]*entity.Material, error)
	Update(material *entity.Material) error
}
