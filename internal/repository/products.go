// Package repository provides data access for products.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CompositionItemDocument is a single material consumption entry inside a
// product document.
type CompositionItemDocument struct {
	RawMaterialID string  `bson:"raw_material_id" json:"rawMaterialId"`
	Quantity      float64 `bson:"quantity" json:"quantity"`
}

// ProductDocument represents a product document in MongoDB.
type ProductDocument struct {
	ID          string                    `bson:"_id" json:"id"`
	Name        string                    `bson:"name" json:"name"`
	SalePrice   float64                   `bson:"sale_price" json:"salePrice"`
	Composition []CompositionItemDocument `bson:"composition" json:"composition"`
	CreatedAt   time.Time                 `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time                 `bson:"updated_at" json:"updated_at"`
}

// ProductsRepository provides methods for product operations.
type ProductsRepository struct {
	collection *mongo.Collection
}

// NewProductsRepository creates a new products repository.
func NewProductsRepository(db *MongoDB) *ProductsRepository {
	return &ProductsRepository{
		collection: db.Products,
	}
}

// List returns all products sorted by name.
func (r *ProductsRepository) List(ctx context.Context) ([]ProductDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := []ProductDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetByID returns the product with the given id.
func (r *ProductsRepository) GetByID(ctx context.Context, id string) (*ProductDocument, error) {
	var doc ProductDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create inserts a new product with a server-assigned id.
func (r *ProductsRepository) Create(ctx context.Context, name string, salePrice float64, composition []CompositionItemDocument) (*ProductDocument, error) {
	if composition == nil {
		composition = []CompositionItemDocument{}
	}

	now := time.Now()
	doc := ProductDocument{
		ID:          uuid.New().String(),
		Name:        name,
		SalePrice:   salePrice,
		Composition: composition,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes the product with the given id.
func (r *ProductsRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
