//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John-Mota/production-optimizer-back/internal/repository"
	"github.com/John-Mota/production-optimizer-back/internal/testutil"
)

func TestProductsRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	db := testutil.NewTestDatabase(t)
	repo := repository.NewProductsRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Table", 250.5, []repository.CompositionItemDocument{
		{RawMaterialID: "m1", Quantity: 20},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 250.5, created.SalePrice)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Composition, 1)
	assert.Equal(t, "m1", fetched.Composition[0].RawMaterialID)
	assert.Equal(t, 20.0, fetched.Composition[0].Quantity)
}

func TestProductsRepository_Create_NilCompositionStoredEmpty(t *testing.T) {
	t.Parallel()

	db := testutil.NewTestDatabase(t)
	repo := repository.NewProductsRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Sticker", 2.5, nil)
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetched.Composition)
	assert.Empty(t, fetched.Composition)
}

func TestProductsRepository_List_SortedByName(t *testing.T) {
	t.Parallel()

	db := testutil.NewTestDatabase(t)
	repo := repository.NewProductsRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Table", "Chair", "Shelf"} {
		_, err := repo.Create(ctx, name, 10, nil)
		require.NoError(t, err)
	}

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "Chair", docs[0].Name)
	assert.Equal(t, "Shelf", docs[1].Name)
	assert.Equal(t, "Table", docs[2].Name)
}

func TestProductsRepository_Delete(t *testing.T) {
	t.Parallel()

	db := testutil.NewTestDatabase(t)
	repo := repository.NewProductsRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Table", 250.5, nil)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), repository.ErrNotFound)
}

func TestSeededCatalog_RoundTrip(t *testing.T) {
	t.Parallel()

	db := testutil.NewTestDatabase(t)
	materialIDs := testutil.WorkshopFixture(t, db)

	materials, err := repository.NewRawMaterialsRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, materialIDs["Wood"], materials[0].ID)

	products, err := repository.NewProductsRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Table", products[0].Name)
	require.Len(t, products[0].Composition, 1)
	assert.Equal(t, materialIDs["Wood"], products[0].Composition[0].RawMaterialID)
}

func TestMongoDB_HealthCheck(t *testing.T) {
	t.Parallel()

	db := testutil.NewTestDatabase(t)
	assert.NoError(t, db.HealthCheck(context.Background()))
}
