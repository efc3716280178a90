package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para materiales. El stock se maneja vía
// lotes y eventos, nunca editando el material.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// Create crea un material nuevo con su unidad canónica.
func (uc *MaterialUseCase) Create(in dto.CreateMaterialRequest) (*entity.Material, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.CanonicalUnit {
	case entity.UnitGrams, entity.UnitKilograms, entity.UnitMilliliters, entity.UnitLiters, entity.UnitUnits:
	default:
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	material := &entity.Material{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Category:      in.Category,
		CanonicalUnit: in.CanonicalUnit,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return material, nil
}

// GetByID devuelve un material por id.
func (uc *MaterialUseCase) GetByID(id string) (*entity.Material, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil || material == nil {
		return nil, domain.ErrNotFound
	}
	return material, nil
}

// List lista materiales paginados.
func (uc *MaterialUseCase) List(limit, offset int) ([]*entity.Material, error) {
	return uc.repo.List(limit, offset)
}

// Update actualiza los metadatos del material. La unidad canónica no cambia
// una vez que existen lotes que la referencian; aquí solo se tocan metadatos.
func (uc *MaterialUseCase) Update(id string, in dto.UpdateMaterialRequest) (*entity.Material, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil || material == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		material.Name = in.Name
	}
	if in.Category != "" {
		material.Category = in.Category
	}
	material.Notes = in.Notes
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return material, nil
}
