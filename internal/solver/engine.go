package solver

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultTimeBudget bounds the exact branch-and-bound search. When the
	// budget is exhausted the engine falls back to the greedy heuristic and
	// flags the result as approximate.
	DefaultTimeBudget = 5 * time.Second

	// deadlineCheckInterval is how many search nodes are expanded between
	// wall-clock checks.
	deadlineCheckInterval = 1024
)

// Solution is the solved quantity vector, aligned with Problem.Candidates.
// Total is the objective value computed in exact decimal arithmetic.
// Exact reports whether the search proved optimality.
type Solution struct {
	Quantities []int
	Total      decimal.Decimal
	Exact      bool
}

// Engine solves production planning problems. It holds no per-run state, so
// a single Engine serves concurrent requests.
type Engine struct {
	timeBudget time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeBudget sets the wall-clock budget for the exact search.
func WithTimeBudget(budget time.Duration) Option {
	return func(e *Engine) {
		if budget > 0 {
			e.timeBudget = budget
		}
	}
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{timeBudget: DefaultTimeBudget}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Solve maximizes total projected value over the problem's candidates.
// It is a pure function of the problem: stock is never mutated, and
// identical problems always yield identical solutions.
func (e *Engine) Solve(p Problem) Solution {
	if len(p.Candidates) == 0 {
		return Solution{Quantities: []int{}, Total: decimal.Zero, Exact: true}
	}

	s := newSearch(&p, time.Now().Add(e.timeBudget))
	s.run()

	if !s.timedOut {
		return Solution{Quantities: s.best, Total: s.bestTotal, Exact: true}
	}

	// Budget exhausted: take the greedy plan unless the aborted search
	// already found something strictly better.
	greedyQty, greedyTotal := greedyPlan(&p)
	if s.hasBest && betterSolution(&p, s.best, s.bestTotal, greedyQty, greedyTotal) {
		return Solution{Quantities: s.best, Total: s.bestTotal, Exact: false}
	}
	return Solution{Quantities: greedyQty, Total: greedyTotal, Exact: false}
}

// search carries the mutable state of one branch-and-bound run.
type search struct {
	p        *Problem
	order    []int // candidate indexes, most valuable first
	deadline time.Time
	nodes    int
	timedOut bool

	remaining    []decimal.Decimal
	current      []int
	currentTotal decimal.Decimal

	best      []int
	bestTotal decimal.Decimal
	hasBest   bool
}

func newSearch(p *Problem, deadline time.Time) *search {
	remaining := make([]decimal.Decimal, len(p.Resources))
	for i, r := range p.Resources {
		remaining[i] = r.Stock
	}
	return &search{
		p:            p,
		order:        searchOrder(p),
		deadline:     deadline,
		remaining:    remaining,
		current:      make([]int, len(p.Candidates)),
		currentTotal: decimal.Zero,
		bestTotal:    decimal.Zero,
	}
}

func (s *search) run() {
	s.expand(0)
}

// expand explores quantities for the candidate at search position pos.
// Returns true when the deadline was hit and the search must unwind.
func (s *search) expand(pos int) bool {
	s.nodes++
	if s.nodes%deadlineCheckInterval == 0 && time.Now().After(s.deadline) {
		s.timedOut = true
		return true
	}

	if pos == len(s.order) {
		s.recordIncumbent()
		return false
	}

	// Admissible bound: the current value plus each remaining candidate at
	// its individual maximum under the remaining stock. Prune only when the
	// bound is strictly below the incumbent; ties are still explored so the
	// tie-break rules can apply.
	if s.hasBest && s.bound(pos).LessThan(s.bestTotal) {
		return false
	}

	cand := &s.p.Candidates[s.order[pos]]
	cap := maxQuantity(cand.Needs, s.remaining)
	for q := cap; q >= 0; q-- {
		s.apply(cand, s.order[pos], q)
		aborted := s.expand(pos + 1)
		s.unapply(cand, s.order[pos], q)
		if aborted {
			return true
		}
	}
	return false
}

// bound returns an upper bound on the best total reachable from this node.
func (s *search) bound(pos int) decimal.Decimal {
	b := s.currentTotal
	for _, idx := range s.order[pos:] {
		cand := &s.p.Candidates[idx]
		if cand.Price.Sign() <= 0 {
			continue
		}
		if q := maxQuantity(cand.Needs, s.remaining); q > 0 {
			b = b.Add(cand.Price.Mul(decimal.NewFromInt(int64(q))))
		}
	}
	return b
}

func (s *search) apply(cand *Candidate, idx, q int) {
	s.current[idx] = q
	if q == 0 {
		return
	}
	qty := decimal.NewFromInt(int64(q))
	for i, need := range cand.Needs {
		if !need.IsZero() {
			s.remaining[i] = s.remaining[i].Sub(need.Mul(qty))
		}
	}
	s.currentTotal = s.currentTotal.Add(cand.Price.Mul(qty))
}

func (s *search) unapply(cand *Candidate, idx, q int) {
	s.current[idx] = 0
	if q == 0 {
		return
	}
	qty := decimal.NewFromInt(int64(q))
	for i, need := range cand.Needs {
		if !need.IsZero() {
			s.remaining[i] = s.remaining[i].Add(need.Mul(qty))
		}
	}
	s.currentTotal = s.currentTotal.Sub(cand.Price.Mul(qty))
}

func (s *search) recordIncumbent() {
	if s.hasBest && !betterSolution(s.p, s.current, s.currentTotal, s.best, s.bestTotal) {
		return
	}
	if s.best == nil {
		s.best = make([]int, len(s.current))
	}
	copy(s.best, s.current)
	s.bestTotal = s.currentTotal
	s.hasBest = true
}

// searchOrder returns candidate indexes sorted most-valuable-first so good
// incumbents appear early and pruning bites sooner. Ties keep product id
// order, which candidates already follow.
func searchOrder(p *Problem) []int {
	order := make([]int, len(p.Candidates))
	scores := make([]decimal.Decimal, len(p.Candidates))
	for i := range p.Candidates {
		order[i] = i
		scores[i] = densityScore(p, &p.Candidates[i])
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]].GreaterThan(scores[order[b]])
	})
	return order
}

// densityScore rates a candidate by price per share of its scarcest
// resource: products that earn more while consuming less of the tightest
// stock rank higher. Candidates needing an out-of-stock material score zero.
func densityScore(p *Problem, cand *Candidate) decimal.Decimal {
	if cand.Price.Sign() <= 0 {
		return decimal.Zero
	}
	scarcest := decimal.Zero
	for i, need := range cand.Needs {
		if need.IsZero() {
			continue
		}
		if p.Resources[i].Stock.Sign() <= 0 {
			return decimal.Zero
		}
		share := need.Div(p.Resources[i].Stock)
		if share.GreaterThan(scarcest) {
			scarcest = share
		}
	}
	if scarcest.IsZero() {
		return decimal.Zero
	}
	return cand.Price.Div(scarcest)
}

// betterSolution reports whether quantity vector qa (total ta) is preferred
// over qb (total tb). Higher total wins; equal totals are broken by fewest
// distinct products, then lowest total material consumption, then by
// concentrating production on the lowest product ids.
func betterSolution(p *Problem, qa []int, ta decimal.Decimal, qb []int, tb decimal.Decimal) bool {
	if c := ta.Cmp(tb); c != 0 {
		return c > 0
	}
	da, db := distinctProducts(qa), distinctProducts(qb)
	if da != db {
		return da < db
	}
	if c := totalConsumption(p, qa).Cmp(totalConsumption(p, qb)); c != 0 {
		return c < 0
	}
	// Candidates are in product id order.
	for i := range qa {
		if qa[i] != qb[i] {
			return qa[i] > qb[i]
		}
	}
	return false
}

func distinctProducts(q []int) int {
	n := 0
	for _, v := range q {
		if v > 0 {
			n++
		}
	}
	return n
}

func totalConsumption(p *Problem, q []int) decimal.Decimal {
	total := decimal.Zero
	for i, qty := range q {
		if qty == 0 {
			continue
		}
		d := decimal.NewFromInt(int64(qty))
		for _, need := range p.Candidates[i].Needs {
			if !need.IsZero() {
				total = total.Add(need.Mul(d))
			}
		}
	}
	return total
}
