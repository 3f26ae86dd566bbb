package model

// ProductionSuggestion is a recommended (product, quantity) pair in the
// optimizer's output. Only products with a solved quantity >= 1 appear.
//
// @Description Recommended production quantity for a product
// @Example {"product": {"id": "1", "name": "Table", "salePrice": 250.5, "composition": []}, "quantity": 5}
type ProductionSuggestion struct {
	// Product is the catalog snapshot of the suggested product
	Product Product `json:"product"`
	// Quantity is the suggested number of units to produce
	Quantity int `json:"quantity" example:"5"`
}

// OptimizationResult is the complete outcome of one optimization run.
//
// @Description Optimization result: total projected value and per-product suggestions
// @Example {"totalProjectedValue": 1252.5, "productionSuggestions": [{"product": {"id": "1", "name": "Table", "salePrice": 250.5, "composition": []}, "quantity": 5}], "exact": true}
type OptimizationResult struct {
	// TotalProjectedValue is the sum of quantity * salePrice over all suggestions
	TotalProjectedValue float64 `json:"totalProjectedValue" example:"1252.5"`
	// ProductionSuggestions lists the products worth producing, in product id order
	ProductionSuggestions []ProductionSuggestion `json:"productionSuggestions"`
	// Exact reports whether the solver proved optimality; false means the
	// bounded-time heuristic fallback produced the plan
	Exact bool `json:"exact" example:"true"`
}

// EmptyOptimizationResult returns the result for a catalog with nothing
// worth producing: zero value, no suggestions, exact.
func EmptyOptimizationResult() OptimizationResult {
	return OptimizationResult{
		TotalProjectedValue:   0,
		ProductionSuggestions: []ProductionSuggestion{},
		Exact:                 true,
	}
}
