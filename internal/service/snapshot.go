package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/John-Mota/production-optimizer-back/internal/domain/model"
	"github.com/John-Mota/production-optimizer-back/internal/repository"
)

// ErrSnapshotUnavailable is returned when the catalog cannot be read and
// no optimization run can start.
var ErrSnapshotUnavailable = errors.New("catalog snapshot unavailable")

// ErrRepositoryNotConfigured is returned when a catalog service runs
// without its repository, typically because the database is disabled.
var ErrRepositoryNotConfigured = errors.New("catalog repository not configured")

// SnapshotLoader reads a point-in-time copy of the catalog for one
// optimization run.
type SnapshotLoader interface {
	Load(ctx context.Context) (model.CatalogSnapshot, error)
}

// SnapshotLoaderImpl implements SnapshotLoader against the catalog
// repositories. Materials and products are read concurrently.
type SnapshotLoaderImpl struct {
	materialsRepo repository.RawMaterialsRepositoryInterface
	productsRepo  repository.ProductsRepositoryInterface
}

// NewSnapshotLoader creates a new snapshot loader.
func NewSnapshotLoader(
	materialsRepo repository.RawMaterialsRepositoryInterface,
	productsRepo repository.ProductsRepositoryInterface,
) SnapshotLoader {
	return &SnapshotLoaderImpl{
		materialsRepo: materialsRepo,
		productsRepo:  productsRepo,
	}
}

// Load reads both catalog collections and assembles an immutable snapshot.
// Any read failure yields ErrSnapshotUnavailable with the cause wrapped.
func (l *SnapshotLoaderImpl) Load(ctx context.Context) (model.CatalogSnapshot, error) {
	if l.materialsRepo == nil || l.productsRepo == nil {
		return model.CatalogSnapshot{}, ErrRepositoryNotConfigured
	}

	var (
		materialDocs []repository.RawMaterialDocument
		productDocs  []repository.ProductDocument
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, err := l.materialsRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("list raw materials: %w", err)
		}
		materialDocs = docs
		return nil
	})
	g.Go(func() error {
		docs, err := l.productsRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		productDocs = docs
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.CatalogSnapshot{}, errors.Join(ErrSnapshotUnavailable, err)
	}

	snap := model.CatalogSnapshot{
		Materials: make([]model.RawMaterial, len(materialDocs)),
		Products:  make([]model.Product, len(productDocs)),
	}
	for i, doc := range materialDocs {
		snap.Materials[i] = materialDocToModel(&doc)
	}
	for i, doc := range productDocs {
		snap.Products[i] = productDocToModel(&doc)
	}
	return snap, nil
}

// materialDocToModel converts a repository document to a domain model.
func materialDocToModel(doc *repository.RawMaterialDocument) model.RawMaterial {
	return model.RawMaterial{
		ID:            doc.ID,
		Name:          doc.Name,
		StockQuantity: doc.StockQuantity,
	}
}

// productDocToModel converts a repository document to a domain model.
func productDocToModel(doc *repository.ProductDocument) model.Product {
	composition := make([]model.CompositionItem, len(doc.Composition))
	for i, item := range doc.Composition {
		composition[i] = model.CompositionItem{
			RawMaterialID: item.RawMaterialID,
			Quantity:      item.Quantity,
		}
	}
	return model.Product{
		ID:          doc.ID,
		Name:        doc.Name,
		SalePrice:   doc.SalePrice,
		Composition: composition,
	}
}
