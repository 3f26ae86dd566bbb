// Package repository provides data access for raw materials.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RawMaterialDocument represents a raw material document in MongoDB.
type RawMaterialDocument struct {
	ID            string    `bson:"_id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	StockQuantity float64   `bson:"stock_quantity" json:"stockQuantity"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// RawMaterialsRepository provides methods for raw material operations.
type RawMaterialsRepository struct {
	collection *mongo.Collection
}

// NewRawMaterialsRepository creates a new raw materials repository.
func NewRawMaterialsRepository(db *MongoDB) *RawMaterialsRepository {
	return &RawMaterialsRepository{
		collection: db.RawMaterials,
	}
}

// List returns all raw materials sorted by name.
func (r *RawMaterialsRepository) List(ctx context.Context) ([]RawMaterialDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := []RawMaterialDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetByID returns the raw material with the given id.
func (r *RawMaterialsRepository) GetByID(ctx context.Context, id string) (*RawMaterialDocument, error) {
	var doc RawMaterialDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Create inserts a new raw material with a server-assigned id.
func (r *RawMaterialsRepository) Create(ctx context.Context, name string, stockQuantity float64) (*RawMaterialDocument, error) {
	now := time.Now()
	doc := RawMaterialDocument{
		ID:            uuid.New().String(),
		Name:          name,
		StockQuantity: stockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Update replaces the name and stock quantity of an existing raw material.
func (r *RawMaterialsRepository) Update(ctx context.Context, id, name string, stockQuantity float64) (*RawMaterialDocument, error) {
	update := bson.M{
		"$set": bson.M{
			"name":           name,
			"stock_quantity": stockQuantity,
			"updated_at":     time.Now(),
		},
	}

	var doc RawMaterialDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete removes the raw material with the given id.
func (r *RawMaterialsRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistingIDs returns which of the given material ids exist.
func (r *RawMaterialsRepository) ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	if len(ids) == 0 {
		return map[string]bool{}, nil
	}

	cursor, err := r.collection.Find(
		ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	existing := make(map[string]bool, len(ids))
	var doc struct {
		ID string `bson:"_id"`
	}
	for cursor.Next(ctx) {
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		existing[doc.ID] = true
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return existing, nil
}
