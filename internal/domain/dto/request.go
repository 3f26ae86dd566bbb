// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNameRequired is returned when the name field is empty.
	ErrNameRequired = &ValidationError{
		Field:   "name",
		Message: "must not be empty",
	}
	// ErrNegativeStock is returned when stockQuantity is negative.
	ErrNegativeStock = &ValidationError{
		Field:   "stockQuantity",
		Message: "must be zero or positive",
	}
	// ErrNegativePrice is returned when salePrice is negative.
	ErrNegativePrice = &ValidationError{
		Field:   "salePrice",
		Message: "must be zero or positive",
	}
	// ErrInvalidComposition is returned when a composition item is invalid.
	ErrInvalidComposition = &ValidationError{
		Field:   "composition",
		Message: "each item needs a rawMaterialId and a quantity greater than zero",
	}
)

// RawMaterialRequest represents the JSON request body for creating or
// updating a raw material.
//
// @Description Request to create or update a raw material
// @Example {"name": "Wood", "stockQuantity": 100}
type RawMaterialRequest struct {
	// Name is the material's display name. Must not be empty.
	Name string `json:"name" binding:"required" example:"Wood"`
	// StockQuantity is the number of units in stock. Must be zero or positive.
	StockQuantity float64 `json:"stockQuantity" binding:"gte=0" example:"100" minimum:"0"`
} // @name RawMaterialRequest

// Validate performs custom validation on the request.
func (r *RawMaterialRequest) Validate() error {
	if r.Name == "" {
		return ErrNameRequired
	}
	if r.StockQuantity < 0 {
		return ErrNegativeStock
	}
	return nil
}

// CompositionItemRequest is one composition entry in a product request.
//
// @Description Material consumption per produced unit
type CompositionItemRequest struct {
	// RawMaterialID references an existing raw material.
	RawMaterialID string `json:"rawMaterialId" binding:"required"`
	// Quantity is the units of material consumed per unit of product.
	// Must be greater than zero.
	Quantity float64 `json:"quantity" binding:"required,gt=0" example:"20"`
} // @name CompositionItemRequest

// ProductRequest represents the JSON request body for creating a product.
//
// @Description Request to create a product with its material composition
// @Example {"name": "Table", "salePrice": 250.5, "composition": [{"rawMaterialId": "c1a5b0e2-8f1d-4e0a-9f3b-2d7c6a1e5f90", "quantity": 20}]}
type ProductRequest struct {
	// Name is the product's display name. Must not be empty.
	Name string `json:"name" binding:"required" example:"Table"`
	// SalePrice is the unit sale price. Must be zero or positive.
	SalePrice float64 `json:"salePrice" binding:"gte=0" example:"250.5" minimum:"0"`
	// Composition lists the materials consumed per produced unit.
	Composition []CompositionItemRequest `json:"composition" binding:"dive"`
} // @name ProductRequest

// Validate performs custom validation on the request.
func (r *ProductRequest) Validate() error {
	if r.Name == "" {
		return ErrNameRequired
	}
	if r.SalePrice < 0 {
		return ErrNegativePrice
	}
	for _, item := range r.Composition {
		if item.RawMaterialID == "" || item.Quantity <= 0 {
			return ErrInvalidComposition
		}
	}
	return nil
}
