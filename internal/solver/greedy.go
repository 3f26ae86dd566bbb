package solver

import (
	"github.com/shopspring/decimal"
)

// greedyPlan is the bounded-time fallback: walk candidates by density score
// descending (ties keep product id order) and assign each the maximum
// quantity the remaining stock allows. The result is always feasible and
// deterministic, but not necessarily optimal.
func greedyPlan(p *Problem) ([]int, decimal.Decimal) {
	order := searchOrder(p)

	remaining := make([]decimal.Decimal, len(p.Resources))
	for i, r := range p.Resources {
		remaining[i] = r.Stock
	}

	quantities := make([]int, len(p.Candidates))
	total := decimal.Zero
	for _, idx := range order {
		cand := &p.Candidates[idx]
		if cand.Price.Sign() <= 0 {
			continue
		}
		q := maxQuantity(cand.Needs, remaining)
		if q == 0 {
			continue
		}
		quantities[idx] = q
		qty := decimal.NewFromInt(int64(q))
		for i, need := range cand.Needs {
			if !need.IsZero() {
				remaining[i] = remaining[i].Sub(need.Mul(qty))
			}
		}
		total = total.Add(cand.Price.Mul(qty))
	}
	return quantities, total
}
