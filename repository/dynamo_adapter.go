package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"product-service/models"
)

// DynamoAdapter is a DynamoDB-backed ProductRepo. Scalar columns are stored
// as attributes for filtering; the dynamically-typed parts of the record
// (details, offer, safety) are stored as one JSON document attribute so the
// tagged attribute values round-trip through their own codec.
type DynamoAdapter struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoAdapter(client *dynamodb.Client, table string) *DynamoAdapter {
	return &DynamoAdapter{client: client, table: table}
}

type ddbProduct struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	Title       string `dynamodbav:"title"`
	Slug        string `dynamodbav:"slug"`
	Category    string `dynamodbav:"category"`
	Subcategory string `dynamodbav:"subcategory"`
	Status      string `dynamodbav:"status"`
	Version     int    `dynamodbav:"version"`
	CreatedAt   int64  `dynamodbav:"created_at"`
	Doc         string `dynamodbav:"doc"`
}

func (d *DynamoAdapter) Create(ctx context.Context, product *models.Product) error {
	doc, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("marshal product doc: %w", err)
	}
	item, err := attributevalue.MarshalMap(ddbProduct{
		ID:          product.ID,
		UserID:      product.UserID,
		Title:       product.Title,
		Slug:        product.Slug,
		Category:    product.Category,
		Subcategory: product.Subcategory,
		Status:      string(product.Status),
		Version:     product.Version,
		CreatedAt:   product.CreatedAt,
		Doc:         string(doc),
	})
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &d.table,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var cond *types.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return fmt.Errorf("product %s already exists", product.ID)
		}
		return fmt.Errorf("dynamodb PutItem failed: %w", err)
	}
	return nil
}

func (d *DynamoAdapter) FindByID(ctx context.Context, id string) (*models.Product, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": id})
	if err != nil {
		return nil, fmt.Errorf("marshal key: %w", err)
	}
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{TableName: &d.table, Key: key})
	if err != nil {
		return nil, fmt.Errorf("dynamodb GetItem failed: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}
	return unmarshalDDBProduct(out.Item)
}

func (d *DynamoAdapter) FindBySlug(ctx context.Context, slug string) (*models.Product, error) {
	filterExpr := "slug = :slug"
	values := map[string]types.AttributeValue{
		":slug": &types.AttributeValueMemberS{Value: slug},
	}
	out, err := d.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:                 &d.table,
		FilterExpression:          &filterExpr,
		ExpressionAttributeValues: values,
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("scan by slug failed: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, ErrNotFound
	}
	return unmarshalDDBProduct(out.Items[0])
}

func (d *DynamoAdapter) EnsureIndexes(ctx context.Context) error {
	// Table and GSI creation is handled by infrastructure init.
	return nil
}

func unmarshalDDBProduct(item map[string]types.AttributeValue) (*models.Product, error) {
	var dp ddbProduct
	if err := attributevalue.UnmarshalMap(item, &dp); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}
	var p models.Product
	if err := json.Unmarshal([]byte(dp.Doc), &p); err != nil {
		return nil, fmt.Errorf("unmarshal product doc: %w", err)
	}
	return &p, nil
}
