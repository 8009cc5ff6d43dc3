package repository

import (
	"context"
	"errors"

	"product-service/models"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// ProductRepo defines the persistence operations the create path uses. The
// interface uses plain Go types so DynamoDB and MongoDB adapters are
// interchangeable.
type ProductRepo interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	EnsureIndexes(ctx context.Context) error
}

// SchemaRepo loads the subcategory attribute schemas the cache serves.
type SchemaRepo interface {
	ListSubcategorySchemas(ctx context.Context) ([]*models.SubcategorySchema, error)
}
