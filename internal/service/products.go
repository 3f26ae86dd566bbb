package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/John-Mota/production-optimizer-back/internal/domain/model"
	"github.com/John-Mota/production-optimizer-back/internal/repository"
)

var (
	// ErrProductNotFound is returned when a product id does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrUnknownMaterial is returned when a product's composition references
	// raw materials that do not exist.
	ErrUnknownMaterial = errors.New("composition references unknown raw materials")
)

// ProductsService provides product catalog operations.
type ProductsService interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, name string, salePrice float64, composition []model.CompositionItem) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductsServiceImpl implements ProductsService.
type ProductsServiceImpl struct {
	repo          repository.ProductsRepositoryInterface
	materialsRepo repository.RawMaterialsRepositoryInterface
}

// NewProductsService creates a new products service. The materials
// repository is used to verify composition references on create.
func NewProductsService(
	repo repository.ProductsRepositoryInterface,
	materialsRepo repository.RawMaterialsRepositoryInterface,
) ProductsService {
	return &ProductsServiceImpl{
		repo:          repo,
		materialsRepo: materialsRepo,
	}
}

// List returns all products sorted by name.
func (s *ProductsServiceImpl) List(ctx context.Context) ([]model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]model.Product, len(docs))
	for i, doc := range docs {
		products[i] = productDocToModel(&doc)
	}
	return products, nil
}

// GetByID returns a single product.
func (s *ProductsServiceImpl) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	p := productDocToModel(doc)
	return &p, nil
}

// Create validates the composition references and stores a new product.
func (s *ProductsServiceImpl) Create(ctx context.Context, name string, salePrice float64, composition []model.CompositionItem) (*model.Product, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	if err := s.verifyComposition(ctx, composition); err != nil {
		return nil, err
	}

	items := make([]repository.CompositionItemDocument, len(composition))
	for i, item := range composition {
		items[i] = repository.CompositionItemDocument{
			RawMaterialID: item.RawMaterialID,
			Quantity:      item.Quantity,
		}
	}

	doc, err := s.repo.Create(ctx, name, salePrice, items)
	if err != nil {
		return nil, err
	}

	p := productDocToModel(doc)
	return &p, nil
}

// Delete removes a product.
func (s *ProductsServiceImpl) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

// verifyComposition checks that every referenced raw material exists.
func (s *ProductsServiceImpl) verifyComposition(ctx context.Context, composition []model.CompositionItem) error {
	if len(composition) == 0 || s.materialsRepo == nil {
		return nil
	}

	ids := make([]string, 0, len(composition))
	seen := make(map[string]bool, len(composition))
	for _, item := range composition {
		if !seen[item.RawMaterialID] {
			seen[item.RawMaterialID] = true
			ids = append(ids, item.RawMaterialID)
		}
	}

	existing, err := s.materialsRepo.ExistingIDs(ctx, ids)
	if err != nil {
		return err
	}

	var missing []string
	for _, id := range ids {
		if !existing[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: %s", ErrUnknownMaterial, strings.Join(missing, ", "))
	}
	return nil
}
