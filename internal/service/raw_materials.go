package service

import (
	"context"
	"errors"

	"github.com/John-Mota/production-optimizer-back/internal/domain/model"
	"github.com/John-Mota/production-optimizer-back/internal/repository"
)

// ErrMaterialNotFound is returned when a raw material id does not exist.
var ErrMaterialNotFound = errors.New("raw material not found")

// RawMaterialsService provides raw material catalog operations.
type RawMaterialsService interface {
	List(ctx context.Context) ([]model.RawMaterial, error)
	GetByID(ctx context.Context, id string) (*model.RawMaterial, error)
	Create(ctx context.Context, name string, stockQuantity float64) (*model.RawMaterial, error)
	Update(ctx context.Context, id, name string, stockQuantity float64) (*model.RawMaterial, error)
	Delete(ctx context.Context, id string) error
}

// RawMaterialsServiceImpl implements RawMaterialsService.
type RawMaterialsServiceImpl struct {
	repo repository.RawMaterialsRepositoryInterface
}

// NewRawMaterialsService creates a new raw materials service.
func NewRawMaterialsService(repo repository.RawMaterialsRepositoryInterface) RawMaterialsService {
	return &RawMaterialsServiceImpl{
		repo: repo,
	}
}

// List returns all raw materials sorted by name.
func (s *RawMaterialsServiceImpl) List(ctx context.Context) ([]model.RawMaterial, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	materials := make([]model.RawMaterial, len(docs))
	for i, doc := range docs {
		materials[i] = materialDocToModel(&doc)
	}
	return materials, nil
}

// GetByID returns a single raw material.
func (s *RawMaterialsServiceImpl) GetByID(ctx context.Context, id string) (*model.RawMaterial, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}

	m := materialDocToModel(doc)
	return &m, nil
}

// Create stores a new raw material and returns it with its assigned id.
func (s *RawMaterialsServiceImpl) Create(ctx context.Context, name string, stockQuantity float64) (*model.RawMaterial, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	doc, err := s.repo.Create(ctx, name, stockQuantity)
	if err != nil {
		return nil, err
	}

	m := materialDocToModel(doc)
	return &m, nil
}

// Update replaces a raw material's name and stock quantity.
func (s *RawMaterialsServiceImpl) Update(ctx context.Context, id, name string, stockQuantity float64) (*model.RawMaterial, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	doc, err := s.repo.Update(ctx, id, name, stockQuantity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}

	m := materialDocToModel(doc)
	return &m, nil
}

// Delete removes a raw material. Products referencing the deleted material
// keep their composition; the optimizer excludes them until the reference
// is fixed.
func (s *RawMaterialsServiceImpl) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMaterialNotFound
		}
		return err
	}
	return nil
}
