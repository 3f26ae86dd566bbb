package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/John-Mota/production-optimizer-back/internal/domain/model"
	"github.com/John-Mota/production-optimizer-back/internal/service/cache"
	"github.com/John-Mota/production-optimizer-back/internal/solver"
)

// OptimizationService defines the interface for production optimization.
type OptimizationService interface {
	// Optimize reads the current catalog and returns the production plan
	// maximizing total projected sale value under stock constraints.
	Optimize(ctx context.Context) (model.OptimizationResult, error)
}

// OptimizationServiceImpl implements OptimizationService. It snapshots the
// catalog, builds the constraint model and runs the solver engine.
type OptimizationServiceImpl struct {
	snapshots SnapshotLoader
	engine    *solver.Engine
	cache     cache.Cache
}

// OptimizationOption configures the optimization service.
type OptimizationOption func(*OptimizationServiceImpl)

// WithResultCache enables caching of optimization results keyed by a
// catalog fingerprint. The solver is deterministic, so a cached result
// is valid until the catalog changes or the TTL expires.
func WithResultCache(capacity int, ttl time.Duration) OptimizationOption {
	return func(s *OptimizationServiceImpl) {
		s.cache = NewShardedCache(capacity, ttl, 16)
	}
}

// WithResultCacheInterface installs a custom cache implementation.
func WithResultCacheInterface(c cache.Cache) OptimizationOption {
	return func(s *OptimizationServiceImpl) {
		s.cache = c
	}
}

// NewOptimizationService creates a new optimization service.
func NewOptimizationService(snapshots SnapshotLoader, engine *solver.Engine, opts ...OptimizationOption) OptimizationService {
	if engine == nil {
		engine = solver.NewEngine()
	}
	s := &OptimizationServiceImpl{
		snapshots: snapshots,
		engine:    engine,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Optimize runs one optimization over a fresh catalog snapshot.
// The solver runs on its own goroutine so a cancelled request context
// stops the wait immediately; the engine's internal time budget bounds
// the solve itself.
func (s *OptimizationServiceImpl) Optimize(ctx context.Context) (model.OptimizationResult, error) {
	start := time.Now()

	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return model.OptimizationResult{}, err
	}

	var fingerprint string
	if s.cache != nil {
		fingerprint = snapshotFingerprint(snap)
		if result, ok := s.cache.Get(fingerprint); ok {
			log.Debug().Str("fingerprint", fingerprint).Msg("Optimization result served from cache")
			return result, nil
		}
	}

	problem := solver.BuildProblem(snap)
	for _, ex := range problem.Excluded {
		log.Warn().
			Str("product_id", ex.Product.ID).
			Str("product_name", ex.Product.Name).
			Str("reason", ex.Reason).
			Msg("Product excluded from optimization")
	}

	if len(problem.Candidates) == 0 {
		return model.EmptyOptimizationResult(), nil
	}

	solved := make(chan solver.Solution, 1)
	go func() {
		solved <- s.engine.Solve(problem)
	}()

	var solution solver.Solution
	select {
	case solution = <-solved:
	case <-ctx.Done():
		return model.OptimizationResult{}, ctx.Err()
	}

	result := buildResult(problem, solution)
	if s.cache != nil {
		s.cache.Set(fingerprint, result)
	}
	log.Info().
		Float64("total_projected_value", result.TotalProjectedValue).
		Int("suggestions", len(result.ProductionSuggestions)).
		Bool("exact", result.Exact).
		Dur("duration", time.Since(start)).
		Msg("Optimization completed")

	return result, nil
}

// snapshotFingerprint hashes the catalog content that influences the
// result: everything the solver reads plus the product names echoed in
// suggestions. Repository listings are sorted, so identical catalogs
// always produce identical fingerprints.
func snapshotFingerprint(snap model.CatalogSnapshot) string {
	h := sha256.New()
	for _, m := range snap.Materials {
		h.Write([]byte(m.ID))
		h.Write([]byte(strconv.FormatFloat(m.StockQuantity, 'g', -1, 64)))
	}
	for _, p := range snap.Products {
		h.Write([]byte(p.ID))
		h.Write([]byte(p.Name))
		h.Write([]byte(strconv.FormatFloat(p.SalePrice, 'g', -1, 64)))
		for _, item := range p.Composition {
			h.Write([]byte(item.RawMaterialID))
			h.Write([]byte(strconv.FormatFloat(item.Quantity, 'g', -1, 64)))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// buildResult translates the solved quantity vector into the API result.
// Candidates are in product id order, so suggestions inherit that order.
func buildResult(p solver.Problem, solution solver.Solution) model.OptimizationResult {
	suggestions := make([]model.ProductionSuggestion, 0, len(solution.Quantities))
	for i, qty := range solution.Quantities {
		if qty < 1 {
			continue
		}
		suggestions = append(suggestions, model.ProductionSuggestion{
			Product:  p.Candidates[i].Product,
			Quantity: qty,
		})
	}

	return model.OptimizationResult{
		TotalProjectedValue:   solution.Total.InexactFloat64(),
		ProductionSuggestions: suggestions,
		Exact:                 solution.Exact,
	}
}
