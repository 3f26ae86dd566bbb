// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/John-Mota/production-optimizer-back/internal/circuitbreaker"
)

// RawMaterialsRepositoryWithCircuitBreaker wraps RawMaterialsRepository with circuit breaker protection.
type RawMaterialsRepositoryWithCircuitBreaker struct {
	repo           *RawMaterialsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRawMaterialsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRawMaterialsRepositoryWithCircuitBreaker(repo *RawMaterialsRepository, cb *circuitbreaker.CircuitBreaker) *RawMaterialsRepositoryWithCircuitBreaker {
	return &RawMaterialsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns all raw materials with circuit breaker protection.
func (r *RawMaterialsRepositoryWithCircuitBreaker) List(ctx context.Context) ([]RawMaterialDocument, error) {
	var result []RawMaterialDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// GetByID returns one raw material with circuit breaker protection.
func (r *RawMaterialsRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*RawMaterialDocument, error) {
	var result *RawMaterialDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		if cbErr == ErrNotFound {
			// Not-found is a domain outcome, not a storage failure.
			result = nil
			return nil
		}
		return cbErr
	})
	if err == nil && result == nil {
		return nil, ErrNotFound
	}
	return result, err
}

// Create inserts a raw material with circuit breaker protection.
func (r *RawMaterialsRepositoryWithCircuitBreaker) Create(ctx context.Context, name string, stockQuantity float64) (*RawMaterialDocument, error) {
	var result *RawMaterialDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, name, stockQuantity)
		return cbErr
	})
	return result, err
}

// Update updates a raw material with circuit breaker protection.
func (r *RawMaterialsRepositoryWithCircuitBreaker) Update(ctx context.Context, id, name string, stockQuantity float64) (*RawMaterialDocument, error) {
	var result *RawMaterialDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, name, stockQuantity)
		if cbErr == ErrNotFound {
			result = nil
			return nil
		}
		return cbErr
	})
	if err == nil && result == nil {
		return nil, ErrNotFound
	}
	return result, err
}

// Delete removes a raw material with circuit breaker protection.
func (r *RawMaterialsRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	notFound := false
	err := r.circuitBreaker.Execute(ctx, func() error {
		cbErr := r.repo.Delete(ctx, id)
		if cbErr == ErrNotFound {
			notFound = true
			return nil
		}
		return cbErr
	})
	if err == nil && notFound {
		return ErrNotFound
	}
	return err
}

// ExistingIDs checks material ids with circuit breaker protection.
func (r *RawMaterialsRepositoryWithCircuitBreaker) ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	var result map[string]bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ExistingIDs(ctx, ids)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RawMaterialsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ProductsRepositoryWithCircuitBreaker wraps ProductsRepository with circuit breaker protection.
type ProductsRepositoryWithCircuitBreaker struct {
	repo           *ProductsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewProductsRepositoryWithCircuitBreaker(repo *ProductsRepository, cb *circuitbreaker.CircuitBreaker) *ProductsRepositoryWithCircuitBreaker {
	return &ProductsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns all products with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) List(ctx context.Context) ([]ProductDocument, error) {
	var result []ProductDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// GetByID returns one product with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*ProductDocument, error) {
	var result *ProductDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		if cbErr == ErrNotFound {
			result = nil
			return nil
		}
		return cbErr
	})
	if err == nil && result == nil {
		return nil, ErrNotFound
	}
	return result, err
}

// Create inserts a product with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) Create(ctx context.Context, name string, salePrice float64, composition []CompositionItemDocument) (*ProductDocument, error) {
	var result *ProductDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, name, salePrice, composition)
		return cbErr
	})
	return result, err
}

// Delete removes a product with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) Delete(ctx context.Context, id string) error {
	notFound := false
	err := r.circuitBreaker.Execute(ctx, func() error {
		cbErr := r.repo.Delete(ctx, id)
		if cbErr == ErrNotFound {
			notFound = true
			return nil
		}
		return cbErr
	})
	if err == nil && notFound {
		return ErrNotFound
	}
	return err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
