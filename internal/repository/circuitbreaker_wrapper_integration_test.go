//go:build integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/John-Mota/production-optimizer-back/internal/circuitbreaker"
	"github.com/John-Mota/production-optimizer-back/internal/repository"
	"github.com/John-Mota/production-optimizer-back/internal/testutil"
)

func catalogBreaker(name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          100 * time.Millisecond,
		Name:             name,
	})
}

func TestRawMaterialsWrapper_RoundTrip(t *testing.T) {
	t.Parallel()

	db := testutil.NewTestDatabase(t)
	wrapped := repository.NewRawMaterialsRepositoryWithCircuitBreaker(
		repository.NewRawMaterialsRepository(db),
		catalogBreaker("materials"),
	)
	ctx := context.Background()

	created, err := wrapped.Create(ctx, "Wood", 100)
	require.NoError(t, err)

	updated, err := wrapped.Update(ctx, created.ID, "Oak Wood", 80)
	require.NoError(t, err)
	assert.Equal(t, "Oak Wood", updated.Name)

	docs, err := wrapped.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	existing, err := wrapped.ExistingIDs(ctx, []string{created.ID, "missing"})
	require.NoError(t, err)
	assert.True(t, existing[created.ID])
	assert.False(t, existing["missing"])

	require.NoError(t, wrapped.Delete(ctx, created.ID))
}

func TestRawMaterialsWrapper_NotFoundDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	db := testutil.NewTestDatabase(t)
	cb := catalogBreaker("materials")
	wrapped := repository.NewRawMaterialsRepositoryWithCircuitBreaker(
		repository.NewRawMaterialsRepository(db), cb,
	)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := wrapped.GetByID(ctx, "no-such-id")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	}
	_, err := wrapped.Update(ctx, "no-such-id", "x", 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, wrapped.Delete(ctx, "no-such-id"), repository.ErrNotFound)

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
}

func TestProductsWrapper_NotFoundDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	db := testutil.NewTestDatabase(t)
	cb := catalogBreaker("products")
	wrapped := repository.NewProductsRepositoryWithCircuitBreaker(
		repository.NewProductsRepository(db), cb,
	)
	ctx := context.Background()

	_, err := wrapped.GetByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, wrapped.Delete(ctx, "no-such-id"), repository.ErrNotFound)
	assert.Equal(t, "closed", cb.GetStats().State)
}

func TestLogsWrapper_OpenCircuitDropsWrites(t *testing.T) {
	t.Parallel()

	db := testutil.NewTestDatabase(t)
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "logs",
	})
	wrapped := repository.NewLogsRepositoryWithCircuitBreaker(
		repository.NewLogsRepository(db), cb,
	)
	ctx := context.Background()

	// Trip the shared breaker so writes hit it open.
	_ = cb.Execute(ctx, func() error { return errors.New("storage down") })
	require.Equal(t, "open", cb.GetStats().State)

	assert.NoError(t, wrapped.Create(ctx, &repository.LogEntryDocument{Level: "info", Message: "dropped"}))
	assert.NoError(t, wrapped.CreateMany(ctx, []*repository.LogEntryDocument{{Level: "info", Message: "dropped"}}))

	// Reads are not silently dropped.
	_, err := wrapped.Query(ctx, repository.LogQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}

func TestLogsWrapper_WritesWhenClosed(t *testing.T) {
	t.Parallel()

	db := testutil.NewTestDatabase(t)
	wrapped := repository.NewLogsRepositoryWithCircuitBreaker(
		repository.NewLogsRepository(db),
		catalogBreaker("logs"),
	)
	ctx := context.Background()

	require.NoError(t, wrapped.Create(ctx, &repository.LogEntryDocument{Level: "info", Message: "stored"}))

	count, err := wrapped.Count(ctx, repository.LogQueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
