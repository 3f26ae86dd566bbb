// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/John-Mota/production-optimizer-back/internal/repository"
)

type MockRawMaterialsRepository struct {
	mock.Mock
}

func (m *MockRawMaterialsRepository) List(ctx context.Context) ([]repository.RawMaterialDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RawMaterialDocument), args.Error(1)
}

func (m *MockRawMaterialsRepository) GetByID(ctx context.Context, id string) (*repository.RawMaterialDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RawMaterialDocument), args.Error(1)
}

func (m *MockRawMaterialsRepository) Create(ctx context.Context, name string, stockQuantity float64) (*repository.RawMaterialDocument, error) {
	args := m.Called(ctx, name, stockQuantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RawMaterialDocument), args.Error(1)
}

func (m *MockRawMaterialsRepository) Update(ctx context.Context, id, name string, stockQuantity float64) (*repository.RawMaterialDocument, error) {
	args := m.Called(ctx, id, name, stockQuantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RawMaterialDocument), args.Error(1)
}

func (m *MockRawMaterialsRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRawMaterialsRepository) ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

type MockProductsRepository struct {
	mock.Mock
}

func (m *MockProductsRepository) List(ctx context.Context) ([]repository.ProductDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ProductDocument), args.Error(1)
}

func (m *MockProductsRepository) GetByID(ctx context.Context, id string) (*repository.ProductDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProductDocument), args.Error(1)
}

func (m *MockProductsRepository) Create(ctx context.Context, name string, salePrice float64, composition []repository.CompositionItemDocument) (*repository.ProductDocument, error) {
	args := m.Called(ctx, name, salePrice, composition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProductDocument), args.Error(1)
}

func (m *MockProductsRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLogsRepository struct {
	mock.Mock
}

func (m *MockLogsRepository) Create(ctx context.Context, entry *repository.LogEntryDocument) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepository) CreateMany(ctx context.Context, entries []*repository.LogEntryDocument) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepository) Query(ctx context.Context, opts repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.LogEntryDocument), args.Error(1)
}

func (m *MockLogsRepository) Count(ctx context.Context, opts repository.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
