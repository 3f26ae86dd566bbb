// Package repository provides interfaces for repository operations.
package repository

import (
	"context"
)

// RawMaterialsRepositoryInterface defines the interface for raw material repository operations.
type RawMaterialsRepositoryInterface interface {
	List(ctx context.Context) ([]RawMaterialDocument, error)
	GetByID(ctx context.Context, id string) (*RawMaterialDocument, error)
	Create(ctx context.Context, name string, stockQuantity float64) (*RawMaterialDocument, error)
	Update(ctx context.Context, id, name string, stockQuantity float64) (*RawMaterialDocument, error)
	Delete(ctx context.Context, id string) error
	ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error)
}

// ProductsRepositoryInterface defines the interface for product repository operations.
type ProductsRepositoryInterface interface {
	List(ctx context.Context) ([]ProductDocument, error)
	GetByID(ctx context.Context, id string) (*ProductDocument, error)
	Create(ctx context.Context, name string, salePrice float64, composition []CompositionItemDocument) (*ProductDocument, error)
	Delete(ctx context.Context, id string) error
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
