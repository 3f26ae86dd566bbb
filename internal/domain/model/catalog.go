// Package model defines the core domain entities for the production optimizer.
package model

import (
	"github.com/shopspring/decimal"
)

// RawMaterial represents a raw material held in stock.
//
// @Description Raw material with its current stock level
// @Example {"id": "c1a5b0e2-8f1d-4e0a-9f3b-2d7c6a1e5f90", "name": "Wood", "stockQuantity": 100}
type RawMaterial struct {
	// ID is the server-assigned unique identifier
	ID string `json:"id" bson:"_id" example:"c1a5b0e2-8f1d-4e0a-9f3b-2d7c6a1e5f90"`
	// Name is the material's display name
	Name string `json:"name" bson:"name" example:"Wood"`
	// StockQuantity is the number of units currently in stock
	StockQuantity float64 `json:"stockQuantity" bson:"stock_quantity" example:"100"`
}

// StockDecimal returns the stock quantity as an exact decimal.
func (m RawMaterial) StockDecimal() decimal.Decimal {
	return decimal.NewFromFloat(m.StockQuantity)
}

// CompositionItem is one (material, quantity) pair consumed to produce
// a single unit of a product. Owned by exactly one product.
//
// @Description Material consumption per produced unit
// @Example {"rawMaterialId": "c1a5b0e2-8f1d-4e0a-9f3b-2d7c6a1e5f90", "quantity": 20}
type CompositionItem struct {
	// RawMaterialID references the consumed raw material
	RawMaterialID string `json:"rawMaterialId" bson:"raw_material_id"`
	// Quantity is the units of material consumed per unit of product
	Quantity float64 `json:"quantity" bson:"quantity" example:"20"`
}

// QuantityDecimal returns the consumed quantity as an exact decimal.
func (c CompositionItem) QuantityDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.Quantity)
}

// Product represents a sellable product and its material composition.
//
// @Description Product with sale price and material composition
// @Example {"id": "9f2c7d14-3b6a-4f8e-8c1d-0a5e4b7f2c91", "name": "Table", "salePrice": 250.5, "composition": [{"rawMaterialId": "c1a5b0e2-8f1d-4e0a-9f3b-2d7c6a1e5f90", "quantity": 20}]}
type Product struct {
	// ID is the server-assigned unique identifier
	ID string `json:"id" bson:"_id"`
	// Name is the product's display name
	Name string `json:"name" bson:"name" example:"Table"`
	// SalePrice is the unit sale price
	SalePrice float64 `json:"salePrice" bson:"sale_price" example:"250.5"`
	// Composition lists the materials consumed per produced unit
	Composition []CompositionItem `json:"composition" bson:"composition"`
}

// PriceDecimal returns the sale price as an exact decimal.
func (p Product) PriceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(p.SalePrice)
}

// CatalogSnapshot is an immutable, point-in-time copy of the catalog used
// for a single optimization run. It is never persisted and never mutated
// by the solver.
type CatalogSnapshot struct {
	Materials []RawMaterial
	Products  []Product
}

// MaterialByID returns the snapshot's material with the given id, if present.
func (s CatalogSnapshot) MaterialByID(id string) (RawMaterial, bool) {
	for _, m := range s.Materials {
		if m.ID == id {
			return m, true
		}
	}
	return RawMaterial{}, false
}
