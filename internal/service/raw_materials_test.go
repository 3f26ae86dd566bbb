//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/John-Mota/production-optimizer-back/internal/mocks"
	"github.com/John-Mota/production-optimizer-back/internal/repository"
)

func TestRawMaterialsService_List(t *testing.T) {
	mockRepo := new(mocks.MockRawMaterialsRepository)
	mockRepo.On("List", mock.Anything).Return([]repository.RawMaterialDocument{
		{ID: "m1", Name: "Steel", StockQuantity: 50},
		{ID: "m2", Name: "Wood", StockQuantity: 100},
	}, nil)

	service := NewRawMaterialsService(mockRepo)
	materials, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, "Steel", materials[0].Name)
	assert.Equal(t, 100.0, materials[1].StockQuantity)
}

func TestRawMaterialsService_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(mocks.MockRawMaterialsRepository)
		mockRepo.On("GetByID", mock.Anything, "m1").Return(&repository.RawMaterialDocument{
			ID: "m1", Name: "Wood", StockQuantity: 100,
		}, nil)

		service := NewRawMaterialsService(mockRepo)
		material, err := service.GetByID(context.Background(), "m1")

		require.NoError(t, err)
		assert.Equal(t, "Wood", material.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mocks.MockRawMaterialsRepository)
		mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

		service := NewRawMaterialsService(mockRepo)
		material, err := service.GetByID(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrMaterialNotFound)
		assert.Nil(t, material)
	})
}

func TestRawMaterialsService_Create(t *testing.T) {
	mockRepo := new(mocks.MockRawMaterialsRepository)
	mockRepo.On("Create", mock.Anything, "Wood", 100.0).Return(&repository.RawMaterialDocument{
		ID: "m1", Name: "Wood", StockQuantity: 100,
	}, nil)

	service := NewRawMaterialsService(mockRepo)
	material, err := service.Create(context.Background(), "Wood", 100)

	require.NoError(t, err)
	assert.Equal(t, "m1", material.ID)
	assert.Equal(t, "Wood", material.Name)
	mockRepo.AssertExpectations(t)
}

func TestRawMaterialsService_Update(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(mocks.MockRawMaterialsRepository)
		mockRepo.On("Update", mock.Anything, "m1", "Oak Wood", 80.0).Return(&repository.RawMaterialDocument{
			ID: "m1", Name: "Oak Wood", StockQuantity: 80,
		}, nil)

		service := NewRawMaterialsService(mockRepo)
		material, err := service.Update(context.Background(), "m1", "Oak Wood", 80)

		require.NoError(t, err)
		assert.Equal(t, "Oak Wood", material.Name)
		assert.Equal(t, 80.0, material.StockQuantity)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mocks.MockRawMaterialsRepository)
		mockRepo.On("Update", mock.Anything, "missing", "x", 1.0).Return(nil, repository.ErrNotFound)

		service := NewRawMaterialsService(mockRepo)
		_, err := service.Update(context.Background(), "missing", "x", 1)

		assert.ErrorIs(t, err, ErrMaterialNotFound)
	})
}

func TestRawMaterialsService_Delete(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo := new(mocks.MockRawMaterialsRepository)
		mockRepo.On("Delete", mock.Anything, "m1").Return(nil)

		service := NewRawMaterialsService(mockRepo)
		assert.NoError(t, service.Delete(context.Background(), "m1"))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(mocks.MockRawMaterialsRepository)
		mockRepo.On("Delete", mock.Anything, "missing").Return(repository.ErrNotFound)

		service := NewRawMaterialsService(mockRepo)
		assert.ErrorIs(t, service.Delete(context.Background(), "missing"), ErrMaterialNotFound)
	})
}

func TestRawMaterialsService_RepositoryErrorPassthrough(t *testing.T) {
	dbErr := errors.New("connection reset")
	mockRepo := new(mocks.MockRawMaterialsRepository)
	mockRepo.On("List", mock.Anything).Return(nil, dbErr)

	service := NewRawMaterialsService(mockRepo)
	_, err := service.List(context.Background())

	assert.ErrorIs(t, err, dbErr)
}

func TestRawMaterialsService_NilRepository(t *testing.T) {
	service := NewRawMaterialsService(nil)

	_, err := service.List(context.Background())
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)

	_, err = service.GetByID(context.Background(), "m1")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)

	assert.ErrorIs(t, service.Delete(context.Background(), "m1"), ErrRepositoryNotConfigured)
}
