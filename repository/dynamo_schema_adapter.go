package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"product-service/models"
)

// DynamoSchemaAdapter loads subcategory attribute schemas from DynamoDB. One
// item per category/subcategory/language carries the attribute and safety
// definition lists; the schema cache scans the full table on refresh.
type DynamoSchemaAdapter struct {
	client *dynamodb.Client
	table  string
}

func NewDynamoSchemaAdapter(client *dynamodb.Client, table string) *DynamoSchemaAdapter {
	return &DynamoSchemaAdapter{client: client, table: table}
}

type ddbSchema struct {
	Category    string         `dynamodbav:"category"`
	Subcategory string         `dynamodbav:"subcategory"`
	Language    string         `dynamodbav:"language"`
	Attributes  []ddbAttribute `dynamodbav:"attributes,omitempty"`
	Safety      []ddbAttribute `dynamodbav:"safety,omitempty"`
}

// ddbAttribute is the flattened storage shape of an attribute definition.
// RuleKind selects which of the bound fields apply.
type ddbAttribute struct {
	Name      string   `dynamodbav:"name"`
	Type      string   `dynamodbav:"type"`
	Required  bool     `dynamodbav:"required"`
	Variant   bool     `dynamodbav:"variant"`
	RuleKind  string   `dynamodbav:"rule_kind,omitempty"`
	Min       *float64 `dynamodbav:"min,omitempty"`
	Max       *float64 `dynamodbav:"max,omitempty"`
	Gt        *float64 `dynamodbav:"gt,omitempty"`
	Lt        *float64 `dynamodbav:"lt,omitempty"`
	MinLength *int     `dynamodbav:"min_length,omitempty"`
	MaxLength *int     `dynamodbav:"max_length,omitempty"`
	Pattern   string   `dynamodbav:"pattern,omitempty"`
	Options   []string `dynamodbav:"options,omitempty"`
}

func (d *DynamoSchemaAdapter) ListSubcategorySchemas(ctx context.Context) ([]*models.SubcategorySchema, error) {
	var schemas []*models.SubcategorySchema
	paginator := dynamodb.NewScanPaginator(d.client, &dynamodb.ScanInput{TableName: &d.table})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan schemas failed: %w", err)
		}
		for _, item := range page.Items {
			var ds ddbSchema
			if err := attributevalue.UnmarshalMap(item, &ds); err != nil {
				return nil, fmt.Errorf("unmarshal schema item: %w", err)
			}
			schemas = append(schemas, toSchemaModel(&ds))
		}
	}
	return schemas, nil
}

func toSchemaModel(ds *ddbSchema) *models.SubcategorySchema {
	schema := &models.SubcategorySchema{
		Category:    ds.Category,
		Subcategory: ds.Subcategory,
		Language:    ds.Language,
		Attributes:  make(map[string]*models.AttributeDef, len(ds.Attributes)),
		Safety:      make(map[string]*models.AttributeDef, len(ds.Safety)),
	}
	for i := range ds.Attributes {
		def := toAttributeDef(&ds.Attributes[i])
		schema.Attributes[def.Name] = def
	}
	for i := range ds.Safety {
		def := toAttributeDef(&ds.Safety[i])
		schema.Safety[def.Name] = def
	}
	return schema
}

func toAttributeDef(da *ddbAttribute) *models.AttributeDef {
	def := &models.AttributeDef{
		Name:     da.Name,
		Type:     models.AttributeTypeFromString(da.Type),
		Required: da.Required,
		Variant:  da.Variant,
		Options:  da.Options,
	}
	switch da.RuleKind {
	case "numeric":
		def.Rule = models.NumericRule{Min: da.Min, Max: da.Max, Gt: da.Gt, Lt: da.Lt}
	case "string":
		def.Rule = models.StringRule{MinLength: da.MinLength, MaxLength: da.MaxLength}
	case "regex":
		def.Rule = models.RegexRule{Pattern: da.Pattern}
	}
	return def
}
