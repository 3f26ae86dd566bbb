//go:build integration

// Package testutil provides testcontainers setup and catalog fixtures for integration tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/John-Mota/production-optimizer-back/internal/repository"
)

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB creates and starts a MongoDB testcontainer.
// For better performance, use GetSharedMongoDB with TestMain for container reuse.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	mongoContainer, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		mongoContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &MongoDBContainer{
		Container: mongoContainer,
		URI:       uri,
	}, nil
}

// Cleanup terminates the MongoDB container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m.Container != nil {
		return m.Container.Terminate(ctx)
	}
	return nil
}

// NewTestDatabase connects to the shared container using a database named
// after the test, so packages can run in parallel without clashing.
func NewTestDatabase(t *testing.T) *repository.MongoDB {
	t.Helper()

	db, err := repository.NewMongoDB(GetSharedContainerURI(), SanitizeDBName(t.Name()))
	if err != nil {
		t.Fatalf("failed to connect to test MongoDB: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})

	return db
}

// SeedCatalog inserts the given materials and products and returns the
// stored material ids keyed by name. Product compositions reference
// materials by name; the helper resolves them to the stored ids.
func SeedCatalog(
	t *testing.T,
	db *repository.MongoDB,
	materials map[string]float64,
	products []SeedProduct,
) map[string]string {
	t.Helper()
	ctx := context.Background()

	materialsRepo := repository.NewRawMaterialsRepository(db)
	productsRepo := repository.NewProductsRepository(db)

	materialIDs := make(map[string]string, len(materials))
	for name, stock := range materials {
		doc, err := materialsRepo.Create(ctx, name, stock)
		if err != nil {
			t.Fatalf("failed to seed material %q: %v", name, err)
		}
		materialIDs[name] = doc.ID
	}

	for _, p := range products {
		composition := make([]repository.CompositionItemDocument, 0, len(p.Composition))
		for materialName, qty := range p.Composition {
			id, ok := materialIDs[materialName]
			if !ok {
				t.Fatalf("product %q references unseeded material %q", p.Name, materialName)
			}
			composition = append(composition, repository.CompositionItemDocument{
				RawMaterialID: id,
				Quantity:      qty,
			})
		}
		if _, err := productsRepo.Create(ctx, p.Name, p.SalePrice, composition); err != nil {
			t.Fatalf("failed to seed product %q: %v", p.Name, err)
		}
	}

	return materialIDs
}

// SeedProduct describes a product fixture. Composition maps material
// names to per-unit quantities.
type SeedProduct struct {
	Name        string
	SalePrice   float64
	Composition map[string]float64
}

// WorkshopFixture seeds the wood and table catalog used across the
// integration suite: 100 units of wood, one Table at 250.5 consuming
// 20 wood per unit. The optimal plan is 5 tables worth 1252.5.
func WorkshopFixture(t *testing.T, db *repository.MongoDB) map[string]string {
	t.Helper()
	return SeedCatalog(t, db,
		map[string]float64{"Wood": 100},
		[]SeedProduct{
			{Name: "Table", SalePrice: 250.5, Composition: map[string]float64{"Wood": 20}},
		},
	)
}
