package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"product-service/models"
)

// MongoAdapter is a MongoDB-backed ProductRepo, kept alongside the DynamoDB
// adapter for deployments still on Mongo. Selected via PRODUCT_STORE.
type MongoAdapter struct {
	collection *mongo.Collection
}

func NewMongoAdapter(db *mongo.Database) *MongoAdapter {
	return &MongoAdapter{collection: db.Collection("products")}
}

func (r *MongoAdapter) Create(ctx context.Context, product *models.Product) error {
	if _, err := r.collection.InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("product %s already exists", product.ID)
		}
		return fmt.Errorf("mongo insert failed: %w", err)
	}
	return nil
}

func (r *MongoAdapter) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find failed: %w", err)
	}
	return &product, nil
}

func (r *MongoAdapter) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo find failed: %w", err)
	}
	return &product, nil
}

func (r *MongoAdapter) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}, options.CreateIndexes())
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}
