// Package solver builds and solves the production planning problem: choose
// non-negative integer production quantities maximizing total projected sale
// value subject to raw material stock constraints.
package solver

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/John-Mota/production-optimizer-back/internal/domain/model"
)

// Exclusion reasons for products dropped from the candidate set.
const (
	// ReasonUnknownMaterial marks a composition referencing a material that
	// no longer exists in the snapshot.
	ReasonUnknownMaterial = "unknown_material"
	// ReasonEmptyComposition marks a product with no composition items.
	// A product that consumes nothing has no finite optimum, so it cannot
	// participate in the integer program.
	ReasonEmptyComposition = "empty_composition"
	// ReasonNonPositiveQuantity marks a composition item with quantity <= 0.
	ReasonNonPositiveQuantity = "non_positive_quantity"
)

// Resource is one constraint row: a raw material and its available stock.
type Resource struct {
	ID    string
	Name  string
	Stock decimal.Decimal
}

// Candidate is one decision variable: a product eligible for production.
// Needs is aligned with Problem.Resources; zero where the product does not
// consume that material. Duplicate composition entries for the same material
// are summed during the build.
type Candidate struct {
	Product model.Product
	Price   decimal.Decimal
	Needs   []decimal.Decimal
}

// Exclusion records a product dropped from the candidate set and why.
type Exclusion struct {
	Product model.Product
	Reason  string
}

// Problem is the constraint model for one optimization run. Resources and
// Candidates are sorted by id ascending so identical snapshots always build
// identical problems.
type Problem struct {
	Resources  []Resource
	Candidates []Candidate
	Excluded   []Exclusion
}

// BuildProblem translates a catalog snapshot into a constraint model.
// Products whose composition cannot be resolved are excluded rather than
// failing the build; callers surface exclusions as warnings.
func BuildProblem(snap model.CatalogSnapshot) Problem {
	materials := make([]model.RawMaterial, len(snap.Materials))
	copy(materials, snap.Materials)
	sort.Slice(materials, func(i, j int) bool { return materials[i].ID < materials[j].ID })

	resources := make([]Resource, len(materials))
	resourceIndex := make(map[string]int, len(materials))
	for i, m := range materials {
		resources[i] = Resource{ID: m.ID, Name: m.Name, Stock: m.StockDecimal()}
		resourceIndex[m.ID] = i
	}

	products := make([]model.Product, len(snap.Products))
	copy(products, snap.Products)
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	p := Problem{Resources: resources}
	for _, prod := range products {
		candidate, reason := buildCandidate(prod, resources, resourceIndex)
		if reason != "" {
			p.Excluded = append(p.Excluded, Exclusion{Product: prod, Reason: reason})
			continue
		}
		p.Candidates = append(p.Candidates, candidate)
	}
	return p
}

// buildCandidate resolves one product against the resource set.
// Returns a non-empty reason when the product must be excluded.
func buildCandidate(prod model.Product, resources []Resource, index map[string]int) (Candidate, string) {
	if len(prod.Composition) == 0 {
		return Candidate{}, ReasonEmptyComposition
	}

	needs := make([]decimal.Decimal, len(resources))
	for _, item := range prod.Composition {
		if item.Quantity <= 0 {
			return Candidate{}, ReasonNonPositiveQuantity
		}
		i, ok := index[item.RawMaterialID]
		if !ok {
			return Candidate{}, ReasonUnknownMaterial
		}
		needs[i] = needs[i].Add(item.QuantityDecimal())
	}

	return Candidate{
		Product: prod,
		Price:   prod.PriceDecimal(),
		Needs:   needs,
	}, ""
}

// maxQuantity returns the largest integer quantity of the candidate that the
// given stock vector allows. The division result is verified by exact
// multiplication so decimal rounding can never overstate feasibility.
func maxQuantity(needs []decimal.Decimal, stock []decimal.Decimal) int {
	bound := -1
	for i, need := range needs {
		if need.IsZero() {
			continue
		}
		if stock[i].Sign() <= 0 {
			return 0
		}
		q := int(stock[i].Div(need).IntPart())
		for q > 0 && need.Mul(decimal.NewFromInt(int64(q))).GreaterThan(stock[i]) {
			q--
		}
		if q < 0 {
			q = 0
		}
		if bound == -1 || q < bound {
			bound = q
		}
	}
	if bound < 0 {
		return 0
	}
	return bound
}
